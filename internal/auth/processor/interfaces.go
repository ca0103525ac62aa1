package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"coordinator-console/internal/clients/backend"
)

// AuthBackend defines the remote API calls required by AuthProcessor
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (backend.LoginResponse, error)
}
