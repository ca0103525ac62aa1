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

var ErrInvalidBrandID = errors.New("invalid brand id")

// Saga step names reported on partial failure
const (
	StepCreateBrand = "create-brand"
	StepUploadLogo  = "upload-logo"
	StepAttachLogo  = "attach-logo"
)

type BrandProcessor struct {
	backend BrandBackend
	cache   cache.ListCache
	logger  *observability.Logger
}

func New(backend BrandBackend, listCache cache.ListCache, logger *observability.Logger) BrandProcessor {
	return BrandProcessor{backend: backend, cache: listCache, logger: logger}
}

type CreateBrandInput struct {
	Name        string
	Description string
	Logo        *logo.Image
}

// CreateBrandResult describes what was created. BrandID is set once the
// create-brand step committed, even when a later step failed.
type CreateBrandResult struct {
	BrandID   int64    `json:"brand_id"`
	LogoURL   string   `json:"logo_url,omitempty"`
	Committed []string `json:"committed"`
}

// ListBrands returns the brands visible to token, served from the list cache
// unless refresh is set.
func (p *BrandProcessor) ListBrands(ctx context.Context, token string, refresh bool) ([]backend.Brand, error) {
	brands, err := cache.Fetch(ctx, p.cache, cache.Key(cache.ResourceBrands, token), refresh,
		func(ctx context.Context) ([]backend.Brand, error) {
			return p.backend.ListBrands(ctx, token)
		})
	if err != nil {
		p.logger.Error(ctx, "failed to list brands", err)
		return nil, err
	}
	return brands, nil
}

// CreateBrand runs create-brand, then upload-logo and attach-logo when a logo
// was supplied. Completed steps are not undone.
func (p *BrandProcessor) CreateBrand(ctx context.Context, token string, in CreateBrandInput) (CreateBrandResult, error) {
	var result CreateBrandResult

	s := saga.New("create-brand", p.logger).
		Then(StepCreateBrand, func(ctx context.Context) error {
			id, err := p.backend.CreateBrand(ctx, token, backend.CreateBrandRequest{
				Name:        in.Name,
				Description: in.Description,
			})
			if err != nil {
				return err
			}
			result.BrandID = id
			return nil
		})
	if in.Logo != nil {
		s.Then(StepUploadLogo, func(ctx context.Context) error {
			url, err := p.uploadLogo(ctx, token, result.BrandID, *in.Logo)
			if err != nil {
				return err
			}
			result.LogoURL = url
			return nil
		}).Then(StepAttachLogo, func(ctx context.Context) error {
			return p.attachLogo(ctx, token, result.BrandID, in.Name, in.Description, result.LogoURL)
		})
	}

	committed, err := s.Run(ctx)
	result.Committed = committed
	if len(committed) > 0 {
		p.invalidate(ctx, cache.ResourceBrands)
	}
	return result, err
}

func (p *BrandProcessor) UpdateBrand(ctx context.Context, token string, req backend.UpdateBrandRequest) error {
	if req.BrandID <= 0 {
		return ErrInvalidBrandID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "brand_id", Value: req.BrandID})
	if err := p.backend.UpdateBrand(ctx, token, req); err != nil {
		p.logger.Error(ctx, "failed to update brand", err)
		return err
	}
	p.invalidate(ctx, cache.ResourceBrands)
	return nil
}

// ReplaceLogo uploads img for an existing brand and attaches the returned URL.
func (p *BrandProcessor) ReplaceLogo(ctx context.Context, token string, brand backend.UpdateBrandRequest, img logo.Image) (string, error) {
	if brand.BrandID <= 0 {
		return "", ErrInvalidBrandID
	}
	var url string
	_, err := saga.New("replace-brand-logo", p.logger).
		Then(StepUploadLogo, func(ctx context.Context) error {
			var err error
			url, err = p.uploadLogo(ctx, token, brand.BrandID, img)
			return err
		}).
		Then(StepAttachLogo, func(ctx context.Context) error {
			return p.attachLogo(ctx, token, brand.BrandID, brand.BrandName, brand.Description, url)
		}).
		Run(ctx)
	if url != "" {
		p.invalidate(ctx, cache.ResourceBrands)
	}
	return url, err
}

func (p *BrandProcessor) AssignAdmins(ctx context.Context, token string, brandID int64, adminIDs []int64) error {
	if brandID <= 0 {
		return ErrInvalidBrandID
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "brand_id", Value: brandID},
		observability.Field{Key: "admin_count", Value: len(adminIDs)},
	)
	if err := p.backend.AssignAdmins(ctx, token, brandID, adminIDs); err != nil {
		p.logger.Error(ctx, "failed to assign admins", err)
		return err
	}
	p.invalidate(ctx, cache.ResourceBrands)
	p.invalidate(ctx, cache.ResourceAdmins)
	return nil
}

func (p *BrandProcessor) uploadLogo(ctx context.Context, token string, brandID int64, img logo.Image) (string, error) {
	return p.backend.UploadBrandLogo(ctx, token, backend.UploadLogoRequest{
		BrandID:       brandID,
		Base64Image:   img.Base64(),
		FileExtension: img.Extension,
	})
}

func (p *BrandProcessor) attachLogo(ctx context.Context, token string, brandID int64, name, description, url string) error {
	return p.backend.UpdateBrand(ctx, token, backend.UpdateBrandRequest{
		BrandID:     brandID,
		BrandName:   name,
		Description: description,
		LogoURL:     url,
	})
}

func (p *BrandProcessor) invalidate(ctx context.Context, resource string) {
	if err := p.cache.Invalidate(ctx, resource); err != nil {
		p.logger.Warn(ctx, "failed to invalidate "+resource+" list cache")
	}
}
