package processor

import (
	"context"
	"fmt"
	"time"

	"coordinator-console/internal/navigation"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"
)

// Role sources
const (
	RoleSourceForced  = "forced"
	RoleSourceBackend = "backend"
)

type AuthConfig struct {
	// RoleSource is RoleSourceForced to pin every login to ForcedRole, or
	// RoleSourceBackend to use the role the coordination API returns.
	RoleSource string
	ForcedRole session.Role
}

type AuthProcessor struct {
	backend AuthBackend
	codec   *session.Codec
	config  AuthConfig
	logger  *observability.Logger
}

func New(backend AuthBackend, codec *session.Codec, config AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		backend: backend,
		codec:   codec,
		config:  config,
		logger:  logger,
	}
}

// LoggedIn is the outcome of a successful login: the session, its encoded
// cookie value and where the console should land.
type LoggedIn struct {
	Session        session.Session
	Cookie         string
	ExpiresAt      time.Time
	DefaultSection string
}

// Login exchanges credentials with the coordination API and encodes the
// resulting session. Nothing is persisted when any step fails.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (LoggedIn, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	resp, err := p.backend.Login(ctx, email, password)
	if err != nil {
		p.logger.Error(ctx, "failed to login", err)
		return LoggedIn{}, err
	}

	role, err := p.resolveRole(resp.Role)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve role", err)
		return LoggedIn{}, err
	}

	sess := session.Session{
		Email:           email,
		Role:            role,
		Token:           resp.Token,
		IsAuthenticated: true,
	}
	cookie, expires, err := p.codec.Encode(sess)
	if err != nil {
		p.logger.Error(ctx, "failed to encode session", err)
		return LoggedIn{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "role", Value: string(role)}), "user logged in")
	return LoggedIn{
		Session:        sess,
		Cookie:         cookie,
		ExpiresAt:      expires,
		DefaultSection: navigation.DefaultSection(role),
	}, nil
}

// TTL is how long a login stays valid.
func (p *AuthProcessor) TTL() time.Duration {
	return p.codec.TTL()
}

func (p *AuthProcessor) resolveRole(backendRole string) (session.Role, error) {
	switch p.config.RoleSource {
	case RoleSourceBackend:
		return session.ParseRole(backendRole)
	case RoleSourceForced, "":
		return session.ParseRole(string(p.config.ForcedRole))
	default:
		return "", fmt.Errorf("role source %q: %w", p.config.RoleSource, session.ErrUnknownRole)
	}
}
