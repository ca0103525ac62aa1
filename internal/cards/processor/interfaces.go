package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"coordinator-console/internal/clients/backend"
)

// CardBackend defines the remote API calls required by CardProcessor
type CardBackend interface {
	GenerateVCF(ctx context.Context, token string, campaignID int64, req backend.GenerateVCFRequest) (string, error)
	UploadBrandLogo(ctx context.Context, token string, req backend.UploadLogoRequest) (string, error)
}

// SMSSender delivers a text message to a phone number
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// EmailSender delivers an HTML email
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}
