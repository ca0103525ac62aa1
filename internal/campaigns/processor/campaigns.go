package processor

import (
	"context"
	"errors"

	"coordinator-console/internal/cache"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/logo"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/saga"
)

var (
	ErrCampaignLocked          = errors.New("campaign can no longer be edited")
	ErrInvalidStatusTransition = errors.New("invalid campaign status transition")
	ErrUnknownStatus           = errors.New("unknown campaign status")
	ErrInvalidCampaignID       = errors.New("invalid campaign id")
	ErrInvalidBrandID          = errors.New("invalid brand id")
)

// Saga step names reported on partial failure
const (
	StepUploadLogo     = "upload-logo"
	StepCreateCampaign = "create-campaign"
)

type CampaignProcessor struct {
	backend CampaignBackend
	cache   cache.ListCache
	logger  *observability.Logger
}

func New(backend CampaignBackend, listCache cache.ListCache, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{backend: backend, cache: listCache, logger: logger}
}

// CampaignView is a campaign as the console shows it, including whether the
// edit action is available.
type CampaignView struct {
	backend.Campaign
	Editable           bool                     `json:"editable"`
	AllowedTransitions []backend.CampaignStatus `json:"allowed_transitions"`
}

func newView(c backend.Campaign) CampaignView {
	return CampaignView{
		Campaign:           c,
		Editable:           Editable(c.Status),
		AllowedTransitions: AllowedTransitions(c.Status),
	}
}

type CreateCampaignInput struct {
	Name        string
	BrandID     int64
	CampaignURL string
	Notes       string
	WorkNumber  string
	NurseIDs    []int64
	Logo        *logo.Image
}

type CreateCampaignResult struct {
	LogoURL   string   `json:"logo_url,omitempty"`
	Committed []string `json:"committed"`
}

// ListCampaigns returns the campaigns visible to token. Nurses only receive
// the campaigns they are assigned to.
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, token string, refresh bool) ([]CampaignView, error) {
	campaigns, err := cache.Fetch(ctx, p.cache, cache.Key(cache.ResourceCampaigns, token), refresh,
		func(ctx context.Context) ([]backend.Campaign, error) {
			return p.backend.ListCampaigns(ctx, token)
		})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	views := make([]CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, newView(c))
	}
	return views, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, token string, campaignID int64) (CampaignView, error) {
	if campaignID <= 0 {
		return CampaignView{}, ErrInvalidCampaignID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})
	campaign, err := p.backend.GetCampaign(ctx, token, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignView{}, err
	}
	return newView(campaign), nil
}

// CreateCampaign uploads the logo under the campaign's brand first, then
// creates the campaign with the returned URL.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, token string, in CreateCampaignInput) (CreateCampaignResult, error) {
	if in.BrandID <= 0 {
		return CreateCampaignResult{}, ErrInvalidBrandID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "brand_id", Value: in.BrandID})

	var result CreateCampaignResult
	s := saga.New("create-campaign", p.logger)
	if in.Logo != nil {
		s.Then(StepUploadLogo, func(ctx context.Context) error {
			url, err := p.backend.UploadBrandLogo(ctx, token, backend.UploadLogoRequest{
				BrandID:       in.BrandID,
				Base64Image:   in.Logo.Base64(),
				FileExtension: in.Logo.Extension,
			})
			if err != nil {
				return err
			}
			result.LogoURL = url
			return nil
		})
	}
	s.Then(StepCreateCampaign, func(ctx context.Context) error {
		return p.backend.CreateCampaign(ctx, token, backend.CreateCampaignRequest{
			Name:        in.Name,
			LogoURL:     result.LogoURL,
			BrandID:     in.BrandID,
			CampaignURL: in.CampaignURL,
			Notes:       in.Notes,
			NurseIDs:    in.NurseIDs,
			WorkNumber:  in.WorkNumber,
		})
	})

	committed, err := s.Run(ctx)
	result.Committed = committed
	if err == nil {
		p.invalidate(ctx, cache.ResourceCampaigns)
	}
	return result, err
}

// UpdateCampaign edits a campaign that is still in Draft or UAT. Status
// changes go through ChangeStatus.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, token string, req backend.UpdateCampaignRequest) error {
	current, err := p.GetCampaign(ctx, token, req.CampaignID)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: req.CampaignID},
		observability.Field{Key: "campaign_status", Value: current.Status},
	)
	if !current.Editable {
		p.logger.Warn(ctx, "rejected edit of locked campaign")
		return ErrCampaignLocked
	}

	req.CampaignStatus = nil
	if err := p.backend.UpdateCampaign(ctx, token, req); err != nil {
		p.logger.Error(ctx, "failed to update campaign", err)
		return err
	}
	p.invalidate(ctx, cache.ResourceCampaigns)
	return nil
}

// ChangeStatus moves a campaign along its lifecycle.
func (p *CampaignProcessor) ChangeStatus(ctx context.Context, token string, campaignID int64, to backend.CampaignStatus) (CampaignView, error) {
	if !to.Valid() {
		return CampaignView{}, ErrUnknownStatus
	}
	current, err := p.GetCampaign(ctx, token, campaignID)
	if err != nil {
		return CampaignView{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "from_status", Value: current.Status},
		observability.Field{Key: "to_status", Value: to},
	)
	if err := CheckTransition(current.Status, to); err != nil {
		p.logger.Warn(ctx, "rejected campaign status change")
		return CampaignView{}, err
	}

	if err := p.backend.UpdateCampaign(ctx, token, backend.UpdateCampaignRequest{
		CampaignID:     campaignID,
		CampaignStatus: &to,
	}); err != nil {
		p.logger.Error(ctx, "failed to change campaign status", err)
		return CampaignView{}, err
	}
	p.invalidate(ctx, cache.ResourceCampaigns)

	updated := current.Campaign
	updated.Status = to
	return newView(updated), nil
}

// Deactivate ends a campaign from any non-terminal status.
func (p *CampaignProcessor) Deactivate(ctx context.Context, token string, campaignID int64) (CampaignView, error) {
	return p.ChangeStatus(ctx, token, campaignID, backend.CampaignStatusDeactivated)
}

func (p *CampaignProcessor) AssignNurses(ctx context.Context, token string, campaignID, brandID int64, nurseIDs []int64) error {
	if campaignID <= 0 {
		return ErrInvalidCampaignID
	}
	if brandID <= 0 {
		return ErrInvalidBrandID
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "nurse_count", Value: len(nurseIDs)},
	)
	if err := p.backend.AssignNurses(ctx, token, campaignID, brandID, nurseIDs); err != nil {
		p.logger.Error(ctx, "failed to assign nurses", err)
		return err
	}
	p.invalidate(ctx, cache.ResourceCampaigns)
	p.invalidate(ctx, cache.ResourceNurses)
	return nil
}

func (p *CampaignProcessor) RevokeNurses(ctx context.Context, token string, req backend.RevokeNursesRequest) error {
	if req.CampaignID <= 0 {
		return ErrInvalidCampaignID
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: req.CampaignID},
		observability.Field{Key: "nurse_count", Value: len(req.NurseIDs)},
	)
	if err := p.backend.RevokeNurses(ctx, token, req); err != nil {
		p.logger.Error(ctx, "failed to revoke nurses", err)
		return err
	}
	p.invalidate(ctx, cache.ResourceCampaigns)
	p.invalidate(ctx, cache.ResourceNurses)
	return nil
}

func (p *CampaignProcessor) invalidate(ctx context.Context, resource string) {
	if err := p.cache.Invalidate(ctx, resource); err != nil {
		p.logger.Warn(ctx, "failed to invalidate "+resource+" list cache")
	}
}
