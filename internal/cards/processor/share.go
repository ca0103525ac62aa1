package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"coordinator-console/internal/observability"
)

var (
	ErrNoChannel            = errors.New("no share channel requested")
	ErrUnknownChannel       = errors.New("unknown share channel")
	ErrChannelNotConfigured = errors.New("share channel is not configured")
	ErrMissingPatientURL    = errors.New("patient url is required")
	ErrShareFailed          = errors.New("card could not be delivered")
)

type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

type ShareRequest struct {
	PatientURL   string
	ContactName  string
	ContactPhone string
	ContactEmail string
	CampaignName string
	Channels     []Channel
}

type ChannelOutcome struct {
	Channel   Channel `json:"channel"`
	Delivered bool    `json:"delivered"`
	Error     string  `json:"error,omitempty"`
}

type ShareResult struct {
	Outcomes []ChannelOutcome `json:"outcomes"`
}

// Failed lists the channels that were not delivered.
func (r ShareResult) Failed() []Channel {
	var failed []Channel
	for _, o := range r.Outcomes {
		if !o.Delivered {
			failed = append(failed, o.Channel)
		}
	}
	return failed
}

var shareEmail = template.Must(template.New("share").Parse(
	`<p>Hi {{.Name}},</p><p>Here is your contact card{{if .Campaign}} for {{.Campaign}}{{end}}:</p><p><a href="{{.URL}}">{{.URL}}</a></p>`,
))

// Channels lists the share channels configured on this server.
func (p *CardProcessor) Channels() []Channel {
	var out []Channel
	if p.sms != nil {
		out = append(out, ChannelSMS)
	}
	if p.email != nil {
		out = append(out, ChannelEmail)
	}
	return out
}

// Share delivers the patient URL over each requested channel once. The result
// holds one outcome per channel; the error is non-nil when any channel failed.
func (p *CardProcessor) Share(ctx context.Context, req ShareRequest) (ShareResult, error) {
	if strings.TrimSpace(req.PatientURL) == "" {
		return ShareResult{}, ErrMissingPatientURL
	}
	if len(req.Channels) == 0 {
		return ShareResult{}, ErrNoChannel
	}
	for _, ch := range req.Channels {
		if ch != ChannelSMS && ch != ChannelEmail {
			return ShareResult{}, fmt.Errorf("%q: %w", ch, ErrUnknownChannel)
		}
	}

	var result ShareResult
	seen := make(map[Channel]bool, len(req.Channels))
	for _, ch := range req.Channels {
		if seen[ch] {
			continue
		}
		seen[ch] = true

		outcome := ChannelOutcome{Channel: ch}
		if err := p.deliver(ctx, ch, req); err != nil {
			outcome.Error = err.Error()
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "share_channel", Value: ch}), "failed to share card", err)
		} else {
			outcome.Delivered = true
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if failed := result.Failed(); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, f := range failed {
			names[i] = string(f)
		}
		return result, fmt.Errorf("%w by %s", ErrShareFailed, strings.Join(names, ", "))
	}
	return result, nil
}

func (p *CardProcessor) deliver(ctx context.Context, ch Channel, req ShareRequest) error {
	switch ch {
	case ChannelSMS:
		if p.sms == nil {
			return ErrChannelNotConfigured
		}
		body := fmt.Sprintf("Hi %s, here is your contact card: %s", firstName(req.ContactName), req.PatientURL)
		_, err := p.sms.SendSMS(ctx, req.ContactPhone, body)
		return err
	case ChannelEmail:
		if p.email == nil {
			return ErrChannelNotConfigured
		}
		var buf bytes.Buffer
		if err := shareEmail.Execute(&buf, map[string]string{
			"Name":     firstName(req.ContactName),
			"Campaign": req.CampaignName,
			"URL":      req.PatientURL,
		}); err != nil {
			return err
		}
		_, err := p.email.SendEmail(ctx, req.ContactEmail, "Your contact card", buf.String())
		return err
	}
	return ErrUnknownChannel
}

func firstName(name string) string {
	if parts := strings.Fields(name); len(parts) > 0 {
		return parts[0]
	}
	return "there"
}
