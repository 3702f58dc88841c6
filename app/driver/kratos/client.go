package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"rental-frontend/app/config"
)

const (
	userAgent          = "rental-frontend"
	defaultTimeout     = 10 * time.Second
	healthCheckTimeout = 5 * time.Second
)

// Client talks to the Kratos public (frontend) API on behalf of the one local user
type Client struct {
	api     *kratosclient.APIClient
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a Kratos client from the application config
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.KratosPublicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %q", cfg.KratosPublicURL)
	}

	timeout := cfg.KratosTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return newClient(cfg.KratosPublicURL, &http.Client{Timeout: timeout}, logger), nil
}

func newClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	cfg := kratosclient.NewConfiguration()
	cfg.Servers = kratosclient.ServerConfigurations{{URL: baseURL}}
	cfg.HTTPClient = httpClient
	cfg.UserAgent = userAgent
	cfg.AddDefaultHeader("Accept", "application/json")

	logger = logger.With("component", "kratos_client")
	logger.Info("Kratos client initialized", "public_url", baseURL)

	return &Client{
		api:     kratosclient.NewAPIClient(cfg),
		baseURL: baseURL,
		logger:  logger,
	}
}

// API exposes the generated client for the identity provider's flow calls
func (c *Client) API() *kratosclient.APIClient {
	return c.api
}

// BaseURL returns the Kratos public URL the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version asks Kratos for its running version
func (c *Client) Version(ctx context.Context) (string, error) {
	version, resp, err := c.api.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to reach Kratos at %s: %w", c.baseURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("kratos version endpoint returned status %d", resp.StatusCode)
	}
	return version.GetVersion(), nil
}

// HealthCheck reports whether Kratos answers within a short deadline
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	version, err := c.Version(ctx)
	if err != nil {
		return err
	}

	c.logger.Debug("Kratos is reachable", "version", version)
	return nil
}

// isValidURL accepts absolute http(s) URLs only
func isValidURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
