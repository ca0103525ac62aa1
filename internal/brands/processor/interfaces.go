package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"coordinator-console/internal/clients/backend"
)

// BrandBackend defines the remote API calls required by BrandProcessor
type BrandBackend interface {
	ListBrands(ctx context.Context, token string) ([]backend.Brand, error)
	CreateBrand(ctx context.Context, token string, req backend.CreateBrandRequest) (int64, error)
	UpdateBrand(ctx context.Context, token string, req backend.UpdateBrandRequest) error
	UploadBrandLogo(ctx context.Context, token string, req backend.UploadLogoRequest) (string, error)
	AssignAdmins(ctx context.Context, token string, brandID int64, adminIDs []int64) error
}
