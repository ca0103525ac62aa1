package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"coordinator-console/internal/clients/backend"
)

// CampaignBackend defines the remote API calls required by CampaignProcessor
type CampaignBackend interface {
	ListCampaigns(ctx context.Context, token string) ([]backend.Campaign, error)
	GetCampaign(ctx context.Context, token string, campaignID int64) (backend.Campaign, error)
	CreateCampaign(ctx context.Context, token string, req backend.CreateCampaignRequest) error
	UpdateCampaign(ctx context.Context, token string, req backend.UpdateCampaignRequest) error
	UploadBrandLogo(ctx context.Context, token string, req backend.UploadLogoRequest) (string, error)
	AssignNurses(ctx context.Context, token string, campaignID, brandID int64, nurseIDs []int64) error
	RevokeNurses(ctx context.Context, token string, req backend.RevokeNursesRequest) error
}
