package mail

import (
	"context"
	"errors"
	"fmt"

	"coordinator-console/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrNoRecipient = errors.New("email recipient is empty")

type sendFunc func(params *resend.SendEmailRequest) (string, error)

type ResendClient struct {
	from   string
	send   sendFunc
	logger *observability.Logger
}

func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return newWithSender(from, func(params *resend.SendEmailRequest) (string, error) {
		res, err := client.Emails.Send(params)
		if err != nil {
			return "", err
		}
		return res.Id, nil
	}, logger), nil
}

func newWithSender(from string, send sendFunc, logger *observability.Logger) *ResendClient {
	return &ResendClient{from: from, send: send, logger: logger}
}

// SendEmail sends an HTML email from the configured sender and returns its id.
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	id, err := c.send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return id, nil
}
