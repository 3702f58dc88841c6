package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"rental-frontend/app/config"
	"rental-frontend/app/driver/kratos"
	"rental-frontend/app/driver/postgres"
	"rental-frontend/app/metrics"
	"rental-frontend/app/port"
	"rental-frontend/app/rest"
	"rental-frontend/app/search"
	"rental-frontend/app/usecase"
	"rental-frontend/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	Provider     *kratos.IdentityProvider

	Metrics *metrics.SessionMetrics

	// Usecases
	Session  *usecase.SessionManager
	Listings *usecase.ListingUsecase

	ctx    context.Context
	cancel context.CancelFunc
}

// NewContainer wires every dependency, resolves the initial session and
// starts watching Kratos for session changes
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	ctx, cancel := context.WithCancel(ctx)
	container := &Container{
		Config: cfg,
		Logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := container.init(); err != nil {
		container.Close()
		return nil, err
	}

	logger.Info("Container initialized",
		"conflict_policy", cfg.SessionConflictPolicy,
		"session_status", container.Session.Snapshot().Status)
	return container, nil
}

func (c *Container) init() error {
	var err error
	cfg := c.Config

	c.DB, err = postgres.NewConnection(c.ctx, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	c.KratosClient, err = kratos.NewClient(cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize Kratos client: %w", err)
	}
	c.Provider = kratos.NewIdentityProvider(c.KratosClient, kratos.NewFileTokenStore(cfg.SessionTokenPath), c.Logger)

	policy, err := usecase.ParseConflictPolicy(cfg.SessionConflictPolicy)
	if err != nil {
		return err
	}

	c.Metrics = metrics.New()
	v := validator.New()
	pool := c.DB.Pool()

	c.Session = usecase.NewSessionManager(
		c.Provider,
		postgres.NewProfileRepository(pool, c.Logger),
		v,
		c.Logger,
		usecase.WithConflictPolicy(policy),
		usecase.WithMetrics(c.Metrics),
		usecase.WithEventTimeout(cfg.SessionEventTimeout),
	)
	if err := c.Session.Start(c.ctx); err != nil {
		return fmt.Errorf("failed to start session manager: %w", err)
	}
	go c.Provider.Watch(c.ctx, cfg.SessionPollInterval)

	vocab, err := search.LoadVocabulary(cfg.SearchVocabularyPath)
	if err != nil {
		return fmt.Errorf("failed to load search vocabulary: %w", err)
	}

	c.Listings = usecase.NewListingUsecase(
		c.Session,
		usecase.ListingStores{
			Listings:      postgres.NewListingRepository(pool, c.Logger),
			Saved:         postgres.NewSavedListingRepository(pool, c.Logger),
			Messages:      postgres.NewMessageRepository(pool, c.Logger),
			Notifications: postgres.NewNotificationRepository(pool, c.Logger),
			Preferences:   postgres.NewSearchPreferenceRepository(pool, c.Logger),
		},
		search.NewParser(vocab, c.Logger),
		v,
		c.Metrics,
		c.Logger,
	)

	return nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	router := rest.NewRouter(c.ctx, rest.RouterConfig{
		Logger:   c.Logger,
		Session:  c.Session,
		Listings: c.Listings,
		HealthChecks: map[string]port.HealthChecker{
			"database": c.DB,
			"kratos":   c.Provider,
		},
		Metrics:          c.Metrics.Handler(),
		EnableMetrics:    c.Config.EnableMetrics,
		RateLimitRPS:     c.Config.RateLimitRPS,
		AuthRateLimitRPM: c.Config.AuthRateLimitRPM,
		AllowedOrigins:   c.Config.AllowedOrigins,
	})

	c.Logger.Info("API router created", "metrics", c.Config.EnableMetrics)
	return router
}

// Close stops background work and releases resources
func (c *Container) Close() {
	c.cancel()

	if c.Session != nil {
		c.Session.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed")
}
