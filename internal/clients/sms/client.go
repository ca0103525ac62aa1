package sms

import (
	"context"
	"errors"
	"fmt"

	"coordinator-console/internal/observability"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNoRecipient = errors.New("sms recipient is empty")

type sendFunc func(params *twilioApi.CreateMessageParams) (string, error)

// TwilioClient sends text messages through the Twilio REST API.
type TwilioClient struct {
	from   string
	send   sendFunc
	logger *observability.Logger
}

func NewTwilioClient(accountSID, authToken, from string, logger *observability.Logger) *TwilioClient {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newWithSender(from, func(params *twilioApi.CreateMessageParams) (string, error) {
		resp, err := client.Api.CreateMessage(params)
		if err != nil {
			return "", err
		}
		if resp.Sid == nil {
			return "", nil
		}
		return *resp.Sid, nil
	}, logger)
}

func newWithSender(from string, send sendFunc, logger *observability.Logger) *TwilioClient {
	return &TwilioClient{from: from, send: send, logger: logger}
}

// SendSMS sends body to the phone number to and returns the message sid.
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	if to == "" {
		return "", ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	sid, err := c.send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send sms", err)
		return "", fmt.Errorf("twilio: failed to send sms: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "message_sid", Value: sid})
	c.logger.Info(ctx, "sms sent successfully")
	return sid, nil
}
