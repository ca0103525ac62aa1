package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"coordinator-console/internal/session"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidRoleSource        = errors.New("invalid role source")
	ErrInvalidLoginRateLimit    = errors.New("login rate limit must be at least 1")
	ErrInvalidForcedRole        = errors.New("invalid forced role")
)

// Role sources decide where a freshly logged-in session gets its role from.
const (
	RoleSourceForced  = "forced"
	RoleSourceBackend = "backend"
)

// Config holds all application configuration
type Config struct {
	Backend  BackendConfig
	Auth     AuthConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Services ServicesConfig
	Server   ServerConfig
}

// BackendConfig points at the remote coordination API
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds session-related configuration
type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	RoleSource    string
	ForcedRole    string
	SecureCookie  bool

	// LoginRateLimit is the number of login attempts allowed per client IP per minute
	LoginRateLimit int
}

// CacheConfig controls how long fetched lists are served before refetching
type CacheConfig struct {
	StaleAfter time.Duration
}

// RedisConfig holds the optional Redis connection used for the list cache
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// ServicesConfig holds external service credentials used to share generated cards
type ServicesConfig struct {
	WebAppURI          string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioFromNumber   string
	ResendAPIKey       string
	DefaultEmailSender string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	production := os.Getenv("GO_ENV") == "production"
	if !production {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv(production)
}

// FromEnv builds the configuration from the current process environment.
func FromEnv(production bool) (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Backend.BaseURL, err = requireEnv("BACKEND_BASE_URL"); err != nil {
		return nil, err
	}
	if cfg.Backend.Timeout, err = durationEnv("BACKEND_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.SessionSecret, err = requireEnv("SESSION_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.SessionTTL, err = durationEnv("SESSION_TTL", "24h"); err != nil {
		return nil, err
	}
	cfg.Auth.RoleSource = getEnvWithDefault("ROLE_SOURCE", RoleSourceForced)
	if cfg.Auth.RoleSource != RoleSourceForced && cfg.Auth.RoleSource != RoleSourceBackend {
		return nil, fmt.Errorf("ROLE_SOURCE=%q: %w", cfg.Auth.RoleSource, ErrInvalidRoleSource)
	}
	cfg.Auth.ForcedRole = getEnvWithDefault("FORCED_ROLE", string(session.RoleSuperAdmin))
	if _, err := session.ParseRole(cfg.Auth.ForcedRole); err != nil {
		return nil, fmt.Errorf("FORCED_ROLE: %w: %w", ErrInvalidForcedRole, err)
	}
	cfg.Auth.SecureCookie = production
	if cfg.Auth.LoginRateLimit, err = strconv.Atoi(getEnvWithDefault("LOGIN_RATE_LIMIT", "10")); err != nil {
		return nil, fmt.Errorf("failed to parse LOGIN_RATE_LIMIT: %w", err)
	}
	if cfg.Auth.LoginRateLimit < 1 {
		return nil, fmt.Errorf("LOGIN_RATE_LIMIT=%d: %w", cfg.Auth.LoginRateLimit, ErrInvalidLoginRateLimit)
	}

	if cfg.Cache.StaleAfter, err = durationEnv("CACHE_STALE_AFTER", "30s"); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Services configuration
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	cfg.Services.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Services.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Services.TwilioFromNumber = os.Getenv("TWILIO_FROM_NUMBER")
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// LoginURL is where unauthenticated browsers are sent
func (c *ServicesConfig) LoginURL() string {
	return c.WebAppURI + "/login"
}

// SMSEnabled reports whether Twilio credentials are configured
func (c *ServicesConfig) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// EmailEnabled reports whether Resend credentials are configured
func (c *ServicesConfig) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.DefaultEmailSender != ""
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
