package bootstrap

import (
	"context"
	"fmt"

	"coordinator-console/internal/cache"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/clients/mail"
	"coordinator-console/internal/clients/redis"
	"coordinator-console/internal/clients/sms"
	"coordinator-console/internal/config"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/ratelimit"
	"coordinator-console/internal/session"

	authHandler "coordinator-console/internal/auth/handler"
	authProcessor "coordinator-console/internal/auth/processor"
	brandsHandler "coordinator-console/internal/brands/handler"
	brandsProcessor "coordinator-console/internal/brands/processor"
	campaignsHandler "coordinator-console/internal/campaigns/handler"
	campaignsProcessor "coordinator-console/internal/campaigns/processor"
	cardsHandler "coordinator-console/internal/cards/handler"
	cardsProcessor "coordinator-console/internal/cards/processor"
	consoleHandler "coordinator-console/internal/console/handler"
	usersHandler "coordinator-console/internal/users/handler"
	usersProcessor "coordinator-console/internal/users/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Backend      *backend.Client
	Cache        cache.ListCache
	Codec        *session.Codec
	LoginLimiter *ratelimit.Service
	Logger       *observability.Logger

	// Handlers
	AuthHandler      authHandler.Handler
	ConsoleHandler   consoleHandler.Handler
	BrandsHandler    brandsHandler.Handler
	CampaignsHandler campaignsHandler.Handler
	UsersHandler     usersHandler.Handler
	CardsHandler     cardsHandler.Handler

	// Redis client (for cleanup); nil when Redis is disabled
	RedisClient *redis.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize the coordination API client
	deps.Backend = backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)

	// Initialize the list cache, shared through Redis when enabled
	var err error
	deps.RedisClient, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if deps.RedisClient.IsEnabled() {
		deps.Cache = cache.NewRedis(deps.RedisClient, cfg.Cache.StaleAfter, logger)
	} else {
		deps.Cache = cache.NewMemory(cfg.Cache.StaleAfter)
	}

	deps.Codec = session.NewCodec(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
	deps.LoginLimiter = ratelimit.NewService(deps.RedisClient, cfg.Auth.LoginRateLimit, logger)

	// Initialize share senders. Unconfigured channels stay nil interfaces.
	var smsSender cardsProcessor.SMSSender
	if cfg.Services.SMSEnabled() {
		smsSender = sms.NewTwilioClient(
			cfg.Services.TwilioAccountSID,
			cfg.Services.TwilioAuthToken,
			cfg.Services.TwilioFromNumber,
			logger,
		)
	} else {
		logger.Info(ctx, "Twilio is not configured, SMS sharing disabled")
	}

	var emailSender cardsProcessor.EmailSender
	if cfg.Services.EmailEnabled() {
		mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		emailSender = mailClient
	} else {
		logger.Info(ctx, "Resend is not configured, email sharing disabled")
	}

	// Initialize auth processor and handler
	authConfig := authProcessor.AuthConfig{
		RoleSource: cfg.Auth.RoleSource,
		ForcedRole: session.Role(cfg.Auth.ForcedRole),
	}
	authProc := authProcessor.New(deps.Backend, deps.Codec, authConfig, logger)
	deps.AuthHandler = authHandler.New(authProc, cfg.Auth.SecureCookie, logger)

	// Initialize domain processors and handlers
	brandProc := brandsProcessor.New(deps.Backend, deps.Cache, logger)
	deps.BrandsHandler = brandsHandler.New(brandProc, logger)

	campaignProc := campaignsProcessor.New(deps.Backend, deps.Cache, logger)
	deps.CampaignsHandler = campaignsHandler.New(campaignProc, logger)

	userProc := usersProcessor.New(deps.Backend, deps.Cache, logger)
	deps.UsersHandler = usersHandler.New(userProc, logger)

	deps.ConsoleHandler = consoleHandler.New(brandProc, campaignProc, userProc, logger)

	cardProc := cardsProcessor.New(deps.Backend, smsSender, emailSender, logger)
	deps.CardsHandler = cardsHandler.New(cardProc, cfg.Services.WebAppURI, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis client", err)
	}
}
