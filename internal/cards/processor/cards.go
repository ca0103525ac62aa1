package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"coordinator-console/internal/cards/preview"
	"coordinator-console/internal/cards/vcard"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/logo"
	"coordinator-console/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrNotImage       = logo.ErrNotImage
	ErrInvalidBrandID = errors.New("invalid brand id")
)

// Guard names why a generation request was not attempted.
type Guard string

const (
	GuardMissingName     Guard = "missing_name"
	GuardMissingPhone    Guard = "missing_phone"
	GuardMissingCampaign Guard = "missing_campaign"
)

// GeneratedURL is one card artifact. Every successful generation produces a
// new one, even for identical inputs.
type GeneratedURL struct {
	ID           string    `json:"id"`
	CampaignID   int64     `json:"campaign_id"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	PatientURL   string    `json:"patient_url"`
	VCFURL       string    `json:"vcf_url"`
	GeneratedAt  time.Time `json:"generated_at"`
	IsActive     bool      `json:"is_active"`
}

// Result is the outcome of GenerateContactArtifact. Attempted is false when a
// guard stopped the request before any backend call.
type Result struct {
	Attempted bool          `json:"attempted"`
	Guard     Guard         `json:"guard,omitempty"`
	Artifact  *GeneratedURL `json:"artifact,omitempty"`
}

// LogoResult carries the reference the card should show. Reference is the
// local data URL until the upload succeeds, then the backend URL.
type LogoResult struct {
	Reference  string `json:"reference"`
	PreviewURL string `json:"preview_url"`
	Uploaded   bool   `json:"uploaded"`
}

type CardProcessor struct {
	backend CardBackend
	sms     SMSSender
	email   EmailSender
	logger  *observability.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a CardProcessor. sms and email may be nil when the channel is
// not configured.
func New(backend CardBackend, sms SMSSender, email EmailSender, logger *observability.Logger) CardProcessor {
	return CardProcessor{
		backend: backend,
		sms:     sms,
		email:   email,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// GenerateContactArtifact asks the backend to materialise a card for contact.
// It makes a single attempt and never retries.
func (p *CardProcessor) GenerateContactArtifact(ctx context.Context, token string, contact preview.Contact, logoRef *string, campaign *preview.Campaign) (Result, error) {
	name := strings.TrimSpace(contact.Name)
	phone := strings.TrimSpace(contact.PhoneNumber)
	switch {
	case name == "":
		return Result{Guard: GuardMissingName}, nil
	case phone == "":
		return Result{Guard: GuardMissingPhone}, nil
	case campaign == nil || campaign.ID <= 0:
		return Result{Guard: GuardMissingCampaign}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "brand_id", Value: campaign.BrandID},
	)

	var logoURL string
	if logoRef != nil {
		logoURL = *logoRef
	}
	email := strings.TrimSpace(contact.Email)

	fileURL, err := p.backend.GenerateVCF(ctx, token, campaign.ID, backend.GenerateVCFRequest{
		Name:        name,
		PhoneNumber: phone,
		Email:       email,
		LogoURL:     logoURL,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate contact card", err)
		return Result{Attempted: true}, err
	}

	artifact := &GeneratedURL{
		ID:           p.newID(),
		CampaignID:   campaign.ID,
		ContactName:  name,
		ContactPhone: phone,
		ContactEmail: email,
		Logo:         logoURL,
		PatientURL:   fileURL,
		VCFURL:       fileURL,
		GeneratedAt:  p.now().UTC(),
		IsActive:     true,
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "artifact_id", Value: artifact.ID}), "generated contact card")
	return Result{Attempted: true, Artifact: artifact}, nil
}

// IngestLogo validates an uploaded file and stores it as the brand logo.
// A failed upload keeps the local preview as the reference.
func (p *CardProcessor) IngestLogo(ctx context.Context, token string, brandID int64, filename string, data []byte) (LogoResult, error) {
	if brandID <= 0 {
		return LogoResult{}, ErrInvalidBrandID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "brand_id", Value: brandID})

	img, err := logo.Prepare(filename, data)
	if err != nil {
		p.logger.Warn(ctx, "rejected logo file: "+err.Error())
		return LogoResult{}, err
	}

	result := LogoResult{Reference: img.DataURL()}
	result.PreviewURL = result.Reference

	url, err := p.backend.UploadBrandLogo(ctx, token, backend.UploadLogoRequest{
		BrandID:       brandID,
		Base64Image:   img.Base64(),
		FileExtension: img.Extension,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upload logo", err)
		return result, err
	}

	result.Reference = url
	result.Uploaded = true
	return result, nil
}

// ContactCard builds the vCard text for the fields that are visible.
func (p *CardProcessor) ContactCard(visibility preview.FieldVisibility, contact preview.Contact, campaign *preview.Campaign, logoURL string) (string, error) {
	var card vcard.Card
	if visibility.Name {
		card.Name = contact.Name
	}
	if visibility.PhoneNumber {
		card.Phone = contact.PhoneNumber
	}
	if visibility.Email {
		card.Email = contact.Email
	}
	if visibility.Campaign && campaign != nil {
		card.Organization = campaign.Name
	}
	lower := strings.ToLower(logoURL)
	if visibility.Logo && (strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")) {
		card.PhotoURL = logoURL
	}
	return vcard.Build(card)
}
