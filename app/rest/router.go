package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
	"rental-frontend/app/rest/handlers"
	custommw "rental-frontend/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger       *slog.Logger
	Session      port.SessionManager
	Listings     port.ListingUsecase
	HealthChecks map[string]port.HealthChecker

	// Metrics is served on /metrics when EnableMetrics is set
	Metrics       http.Handler
	EnableMetrics bool

	RateLimitRPS     float64
	AuthRateLimitRPM int
	AllowedOrigins   []string
}

// NewRouter creates and configures the Echo router. Background work started
// for the router stops when ctx is done.
func NewRouter(ctx context.Context, config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	authHandler := handlers.NewAuthHandler(config.Session, config.Logger)
	sessionHandler := handlers.NewSessionHandler(config.Session, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.Session, config.Logger)
	listingHandler := handlers.NewListingHandler(config.Listings, config.Logger)
	inboxHandler := handlers.NewInboxHandler(config.Listings, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecks, config.Logger)

	guard := custommw.NewSessionGuard(config.Session, config.Logger)
	originGuard := custommw.NewOriginGuard(custommw.OriginGuardConfig{
		AllowedOrigins: config.AllowedOrigins,
	}, config.Logger)
	rateLimiter := custommw.NewRateLimiter(ctx, custommw.DefaultRateLimitConfig(config.RateLimitRPS, config.AuthRateLimitRPM))

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.RequestLogger(config.Logger))
	e.Use(custommw.NewCORSMiddleware(config.AllowedOrigins))
	e.Use(custommw.SecurityHeaders(custommw.DefaultSecurityConfig()))
	e.Use(originGuard.Middleware())

	v1 := e.Group("/v1")

	// Health endpoints skip rate limiting
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	api := v1.Group("", rateLimiter.RateLimit())

	// Session
	api.GET("/session", sessionHandler.GetSession)
	api.GET("/session/events", sessionHandler.Events)

	auth := api.Group("/auth")
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signout", authHandler.SignOut)

	signedIn := api.Group("", guard.RequireAuth())
	agentOnly := guard.RequireRole(domain.RoleAgent)
	renterOnly := guard.RequireRole(domain.RoleRenter)

	// Profile
	signedIn.GET("/profile", profileHandler.GetProfile)
	signedIn.PATCH("/profile", profileHandler.UpdateProfile)

	// Listings are public to browse
	api.GET("/listings", listingHandler.Search)
	api.GET("/listings/search", listingHandler.NaturalSearch)
	signedIn.GET("/listings/mine", listingHandler.Mine, agentOnly)
	signedIn.POST("/listings", listingHandler.Create, agentOnly)
	signedIn.DELETE("/listings/:id", listingHandler.Delete, agentOnly)
	signedIn.GET("/search/preferences", listingHandler.SearchPreference)

	// Saved listings
	signedIn.GET("/saved", listingHandler.Saved, renterOnly)
	signedIn.POST("/saved/:id", listingHandler.ToggleSaved, renterOnly)

	// Inbox
	signedIn.GET("/messages", inboxHandler.Messages)
	signedIn.POST("/messages", inboxHandler.SendMessage)
	signedIn.GET("/notifications", inboxHandler.Notifications)
	signedIn.POST("/notifications/:id/read", inboxHandler.MarkNotificationRead)

	if config.EnableMetrics && config.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(config.Metrics))
	}

	return e
}
