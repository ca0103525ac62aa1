package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"coordinator-console/internal/clients/backend"
)

// UserBackend defines the remote API calls required by UserProcessor
type UserBackend interface {
	ListAdmins(ctx context.Context, token string) ([]backend.User, error)
	ListNurses(ctx context.Context, token string) ([]backend.User, error)
	CreateUser(ctx context.Context, token string, role backend.UserRole, req backend.CreateUserRequest) error
}
