package processor

import (
	"context"
	"errors"

	"coordinator-console/internal/cache"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/navigation"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"
)

var (
	ErrInvalidUserRole = errors.New("invalid user role")
	ErrRoleNotAllowed  = errors.New("role cannot create this kind of user")
	ErrUnknownTab      = errors.New("unknown user tab")
)

// creatable lists which user roles each console role may create.
var creatable = map[session.Role][]backend.UserRole{
	session.RoleSuperAdmin: {backend.UserRoleAdmin, backend.UserRoleNurse},
	session.RoleAdmin:      {backend.UserRoleNurse},
}

type UserProcessor struct {
	backend UserBackend
	cache   cache.ListCache
	logger  *observability.Logger
}

func New(backend UserBackend, listCache cache.ListCache, logger *observability.Logger) UserProcessor {
	return UserProcessor{backend: backend, cache: listCache, logger: logger}
}

// UserLists holds the lists shown on a user management tab. Admins is nil
// on the nurses tab.
type UserLists struct {
	Tab    navigation.Tab `json:"tab"`
	Admins []backend.User `json:"admins,omitempty"`
	Nurses []backend.User `json:"nurses"`
}

func (p *UserProcessor) ListUsers(ctx context.Context, token string, tab navigation.Tab, refresh bool) (UserLists, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_tab", Value: tab})
	lists := UserLists{Tab: tab}

	switch tab {
	case navigation.TabAdminsAndNurses:
		admins, err := cache.Fetch(ctx, p.cache, cache.Key(cache.ResourceAdmins, token), refresh,
			func(ctx context.Context) ([]backend.User, error) {
				return p.backend.ListAdmins(ctx, token)
			})
		if err != nil {
			p.logger.Error(ctx, "failed to list admins", err)
			return UserLists{}, err
		}
		lists.Admins = admins
	case navigation.TabNurses:
	default:
		return UserLists{}, ErrUnknownTab
	}

	nurses, err := cache.Fetch(ctx, p.cache, cache.Key(cache.ResourceNurses, token), refresh,
		func(ctx context.Context) ([]backend.User, error) {
			return p.backend.ListNurses(ctx, token)
		})
	if err != nil {
		p.logger.Error(ctx, "failed to list nurses", err)
		return UserLists{}, err
	}
	lists.Nurses = nurses
	return lists, nil
}

// CanCreate reports whether creator may create a user with role.
func CanCreate(creator session.Role, role backend.UserRole) bool {
	for _, r := range creatable[creator] {
		if r == role {
			return true
		}
	}
	return false
}

// CreateUser creates an admin or a nurse on behalf of creator.
func (p *UserProcessor) CreateUser(ctx context.Context, token string, creator session.Role, role backend.UserRole, req backend.CreateUserRequest) error {
	if role != backend.UserRoleAdmin && role != backend.UserRoleNurse {
		return ErrInvalidUserRole
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator_role", Value: creator},
		observability.Field{Key: "user_role", Value: role},
	)
	if !CanCreate(creator, role) {
		p.logger.Warn(ctx, "rejected user creation")
		return ErrRoleNotAllowed
	}

	if err := p.backend.CreateUser(ctx, token, role, req); err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return err
	}

	resource := cache.ResourceNurses
	if role == backend.UserRoleAdmin {
		resource = cache.ResourceAdmins
	}
	p.invalidate(ctx, resource)
	if req.BrandID > 0 {
		p.invalidate(ctx, cache.ResourceBrands)
	}
	return nil
}

func (p *UserProcessor) invalidate(ctx context.Context, resource string) {
	if err := p.cache.Invalidate(ctx, resource); err != nil {
		p.logger.Warn(ctx, "failed to invalidate "+resource+" list cache")
	}
}
