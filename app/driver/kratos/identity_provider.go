package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// ErrVerificationRequired is returned by Register when Kratos created the identity
// but requires address verification before issuing a session
var ErrVerificationRequired = domain.NewAuthError(domain.ErrCodeUnknown, "Please check your email to confirm your account", nil)

// IdentityProvider implements port.IdentityProvider on top of Kratos native (API) flows
type IdentityProvider struct {
	client *Client
	tokens TokenStore
	logger *slog.Logger

	mu         sync.Mutex
	last       *domain.Identity
	generation uint64
	listeners  map[int]port.SessionListener
	nextID     int
}

var _ port.IdentityProvider = (*IdentityProvider)(nil)

// NewIdentityProvider creates a Kratos-backed identity provider
func NewIdentityProvider(client *Client, tokens TokenStore, logger *slog.Logger) *IdentityProvider {
	return &IdentityProvider{
		client:    client,
		tokens:    tokens,
		logger:    logger.With("component", "kratos_identity_provider"),
		listeners: make(map[int]port.SessionListener),
	}
}

// Authenticate runs a native login flow with the password method
func (p *IdentityProvider) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	api := p.client.API().FrontendAPI

	flow, httpResp, err := api.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, p.transformKratosError(err, httpResp, operationLogin)
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Identifier: email,
		Password:   password,
		Method:     "password",
	}

	resp, httpResp, err := api.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, p.transformKratosError(err, httpResp, operationLogin)
	}

	session := resp.GetSession()
	identity, err := toDomainIdentity(&session, nil)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrCodeUnknown, "Authentication service returned an invalid session", err)
	}

	p.storeToken(resp.GetSessionToken())
	p.record(identity)

	p.logger.Info("login completed", "identity_id", identity.ID)
	return identity, nil
}

// Register runs a native registration flow; metadata is merged into the identity traits
func (p *IdentityProvider) Register(ctx context.Context, email, password string, metadata map[string]any) (*domain.Identity, error) {
	api := p.client.API().FrontendAPI

	flow, httpResp, err := api.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return nil, p.transformKratosError(err, httpResp, operationRegistration)
	}

	traits := make(map[string]interface{}, len(metadata)+1)
	for key, value := range metadata {
		traits[key] = value
	}
	traits["email"] = email

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits:   traits,
	}

	resp, httpResp, err := api.UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, p.transformKratosError(err, httpResp, operationRegistration)
	}

	session, ok := resp.GetSessionOk()
	if !ok || session == nil || resp.GetSessionToken() == "" {
		p.logger.Info("registration requires verification before sign in")
		return nil, ErrVerificationRequired
	}

	registered := resp.GetIdentity()
	identity, err := toDomainIdentity(session, &registered)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrCodeUnknown, "Authentication service returned an invalid session", err)
	}

	p.storeToken(resp.GetSessionToken())
	p.record(identity)

	p.logger.Info("registration completed", "identity_id", identity.ID)
	return identity, nil
}

// Invalidate revokes the stored session token. The local token is dropped even
// when Kratos cannot be reached.
func (p *IdentityProvider) Invalidate(ctx context.Context) error {
	token, err := p.tokens.Load()
	if err != nil {
		p.logger.Warn("failed to read session token before logout", "error", err)
	}

	defer func() {
		if clearErr := p.tokens.Clear(); clearErr != nil {
			p.logger.Warn("failed to remove session token", "error", clearErr)
		}
		p.record(nil)
	}()

	if token == "" {
		return nil
	}

	httpResp, err := p.client.API().FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(*kratosclient.NewPerformNativeLogoutBody(token)).
		Execute()
	if err != nil {
		// The token is already unusable on the server side
		if status := getHTTPStatus(httpResp); status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil
		}
		return p.transformKratosError(err, httpResp, operationLogout)
	}

	p.logger.Info("logout completed")
	return nil
}

// CurrentSession returns the identity behind the stored token or nil when there is none
func (p *IdentityProvider) CurrentSession(ctx context.Context) (*domain.Identity, error) {
	p.mu.Lock()
	generation := p.generation
	p.mu.Unlock()

	identity, err := p.fetchSession(ctx)
	if err != nil {
		return nil, err
	}

	p.observe(generation, identity)
	return identity, nil
}

// OnSessionChange registers a listener for remote session changes detected by Watch
func (p *IdentityProvider) OnSessionChange(listener port.SessionListener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.listeners[id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.listeners, id)
		})
	}
}

// Watch polls Kratos every interval until ctx is cancelled and emits an event
// whenever the session differs from the last one seen.
func (p *IdentityProvider) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.logger.Info("session watcher started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("session watcher stopped")
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll performs one session check and notifies listeners on change
func (p *IdentityProvider) Poll(ctx context.Context) {
	p.mu.Lock()
	generation := p.generation
	p.mu.Unlock()

	identity, err := p.fetchSession(ctx)
	if err != nil {
		p.logger.Warn("session poll failed", "error", err)
		return
	}

	event, changed := p.observe(generation, identity)
	if !changed {
		return
	}

	p.logger.Debug("session change detected", "event", event.Kind)
	p.emit(event)
}

// HealthCheck reports whether Kratos is reachable
func (p *IdentityProvider) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}

func (p *IdentityProvider) fetchSession(ctx context.Context) (*domain.Identity, error) {
	token, err := p.tokens.Load()
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrCodeUnknown, "Failed to read stored session", err)
	}
	if token == "" {
		return nil, nil
	}

	session, httpResp, err := p.client.API().FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		if status := getHTTPStatus(httpResp); status == http.StatusUnauthorized || status == http.StatusForbidden {
			p.logger.Info("stored session is no longer valid", "status", status)
			p.dropToken()
			return nil, nil
		}
		return nil, p.transformKratosError(err, httpResp, operationWhoami)
	}

	if !session.GetActive() {
		p.dropToken()
		return nil, nil
	}

	identity, err := toDomainIdentity(session, nil)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrCodeUnknown, "Authentication service returned an invalid session", err)
	}
	return identity, nil
}

// record stores the outcome of a locally initiated change so Poll does not echo it
func (p *IdentityProvider) record(identity *domain.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.last = cloneIdentity(identity)
}

// observe updates the last known identity unless a local change happened after
// generation was read, and reports the event the transition corresponds to.
func (p *IdentityProvider) observe(generation uint64, identity *domain.Identity) (domain.SessionEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generation != generation {
		return domain.SessionEvent{}, false
	}

	event, changed := diffSession(p.last, identity)
	if changed {
		p.last = cloneIdentity(identity)
	}
	return event, changed
}

func (p *IdentityProvider) emit(event domain.SessionEvent) {
	p.mu.Lock()
	listeners := make([]port.SessionListener, 0, len(p.listeners))
	for _, listener := range p.listeners {
		listeners = append(listeners, listener)
	}
	p.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

func (p *IdentityProvider) storeToken(token string) {
	if err := p.tokens.Save(token); err != nil {
		p.logger.Warn("failed to persist session token", "error", err)
	}
}

func (p *IdentityProvider) dropToken() {
	if err := p.tokens.Clear(); err != nil {
		p.logger.Warn("failed to remove session token", "error", err)
	}
}

func diffSession(previous, current *domain.Identity) (domain.SessionEvent, bool) {
	switch {
	case previous == nil && current == nil:
		return domain.SessionEvent{}, false
	case current == nil:
		return domain.SessionEvent{Kind: domain.EventSignedOut}, true
	case previous == nil || previous.ID != current.ID:
		return domain.SessionEvent{Kind: domain.EventSignedIn, Identity: cloneIdentity(current)}, true
	case previous.SessionID != current.SessionID || !previous.ExpiresAt.Equal(current.ExpiresAt):
		return domain.SessionEvent{Kind: domain.EventTokenRefreshed, Identity: cloneIdentity(current)}, true
	case previous.Email != current.Email:
		return domain.SessionEvent{Kind: domain.EventUserUpdated, Identity: cloneIdentity(current)}, true
	default:
		return domain.SessionEvent{}, false
	}
}

// toDomainIdentity converts a Kratos session; fallback supplies the identity when
// the session was returned without one.
func toDomainIdentity(session *kratosclient.Session, fallback *kratosclient.Identity) (*domain.Identity, error) {
	if session == nil {
		return nil, fmt.Errorf("missing session")
	}

	kratosIdentity, ok := session.GetIdentityOk()
	if !ok || kratosIdentity == nil {
		kratosIdentity = fallback
	}
	if kratosIdentity == nil || kratosIdentity.Id == "" {
		return nil, fmt.Errorf("session %s has no identity", session.Id)
	}

	id, err := uuid.Parse(kratosIdentity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity id %q: %w", kratosIdentity.Id, err)
	}

	email := ""
	if traits, ok := kratosIdentity.GetTraits().(map[string]interface{}); ok {
		if value, ok := traits["email"].(string); ok {
			email = strings.TrimSpace(value)
		}
	}

	return &domain.Identity{
		ID:        id,
		Email:     email,
		SessionID: session.Id,
		ExpiresAt: session.GetExpiresAt(),
	}, nil
}

func cloneIdentity(identity *domain.Identity) *domain.Identity {
	if identity == nil {
		return nil
	}
	clone := *identity
	return &clone
}
