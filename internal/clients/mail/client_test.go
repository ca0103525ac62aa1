package mail

import (
	"context"
	"errors"
	"testing"

	"coordinator-console/internal/observability"

	"github.com/resendlabs/resend-go"
)

func TestSendEmail(t *testing.T) {
	var got *resend.SendEmailRequest
	client := newWithSender("cards@clinic.com", func(params *resend.SendEmailRequest) (string, error) {
		got = params
		return "em_1", nil
	}, observability.NewNopLogger())

	id, err := client.SendEmail(context.Background(), "jane@clinic.com", "Your card", "<p>hi</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "em_1" {
		t.Errorf("id = %q", id)
	}
	if got.From != "cards@clinic.com" || len(got.To) != 1 || got.To[0] != "jane@clinic.com" || got.Html != "<p>hi</p>" {
		t.Errorf("unexpected request %+v", got)
	}
}

func TestSendEmail_Errors(t *testing.T) {
	sendErr := errors.New("rate limited")
	client := newWithSender("cards@clinic.com", func(*resend.SendEmailRequest) (string, error) {
		return "", sendErr
	}, observability.NewNopLogger())

	if _, err := client.SendEmail(context.Background(), "", "s", "b"); !errors.Is(err, ErrNoRecipient) {
		t.Errorf("expected ErrNoRecipient, got %v", err)
	}
	if _, err := client.SendEmail(context.Background(), "jane@clinic.com", "s", "b"); !errors.Is(err, sendErr) {
		t.Errorf("expected wrapped send error, got %v", err)
	}
}
