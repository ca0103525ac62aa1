package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the fixed name of the persisted session record.
const CookieName = "coordinator_auth"

type Role string

const (
	RoleSuperAdmin Role = "superAdmin"
	RoleAdmin      Role = "admin"
	RoleNurse      Role = "nurse"
)

var (
	ErrUnknownRole     = errors.New("unknown role")
	ErrInvalidSession  = errors.New("invalid session")
	ErrExpiredSession  = errors.New("session expired")
	ErrIncompleteLogin = errors.New("login response missing token")
)

// ParseRole accepts the three console roles exactly as the backend spells them.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleSuperAdmin, RoleAdmin, RoleNurse:
		return r, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownRole)
	}
}

// Session is the authenticated identity every protected view resolves first.
type Session struct {
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	Token           string `json:"-"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Valid reports whether s can be used for role-gated data.
func (s *Session) Valid() bool {
	return s != nil && s.IsAuthenticated && s.Token != ""
}

type claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
	jwt.RegisteredClaims
}

// Codec signs and verifies the session cookie value.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return NewCodecWithClock(secret, ttl, time.Now)
}

func NewCodecWithClock(secret string, ttl time.Duration, now func() time.Time) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: now}
}

// TTL is how long an encoded session stays valid.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode returns the signed cookie value and its expiry.
func (c *Codec) Encode(s Session) (string, time.Time, error) {
	if s.Token == "" {
		return "", time.Time{}, ErrIncompleteLogin
	}
	if _, err := ParseRole(string(s.Role)); err != nil {
		return "", time.Time{}, err
	}

	issuedAt := c.now()
	expires := issuedAt.Add(c.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: s.Email,
		Role:  s.Role,
		Token: s.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "coordinator-console",
			Subject:   s.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, expires, nil
}

// Decode verifies raw and returns the authenticated session it carries.
func (c *Codec) Decode(raw string) (Session, error) {
	var cl claims
	t, err := jwt.ParseWithClaims(raw, &cl, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithIssuer("coordinator-console"))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrExpiredSession
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !t.Valid {
		return Session{}, ErrInvalidSession
	}

	role, err := ParseRole(string(cl.Role))
	if err != nil || cl.Token == "" {
		return Session{}, ErrInvalidSession
	}
	return Session{
		Email:           cl.Email,
		Role:            role,
		Token:           cl.Token,
		IsAuthenticated: true,
	}, nil
}
