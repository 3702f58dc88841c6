package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
	"rental-frontend/app/utils/logger"
	"rental-frontend/app/utils/validator"
)

// Operation names reported to the observer
const (
	OpSignIn        = "sign_in"
	OpSignUp        = "sign_up"
	OpSignOut       = "sign_out"
	OpUpdateProfile = "update_profile"
)

// compensationTimeout bounds the sign out that undoes a half-finished sign in or sign up
const compensationTimeout = 10 * time.Second

// ConflictPolicy decides how provider events interleave with manual operations
type ConflictPolicy int

const (
	// ConflictPreferManual ignores events for any other identity while a manual
	// operation is in flight, including events that arrive before the
	// operation knows its target identity.
	ConflictPreferManual ConflictPolicy = iota
	// ConflictLastWriterByIdentity applies events as they resolve. A manual
	// sign-in or sign-up result is dropped when an event for a different
	// identity committed after the operation began.
	ConflictLastWriterByIdentity
)

func (p ConflictPolicy) String() string {
	switch p {
	case ConflictPreferManual:
		return "prefer_manual"
	case ConflictLastWriterByIdentity:
		return "last_writer"
	default:
		return fmt.Sprintf("ConflictPolicy(%d)", int(p))
	}
}

// ParseConflictPolicy parses the configuration form of a policy
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prefer_manual":
		return ConflictPreferManual, nil
	case "last_writer":
		return ConflictLastWriterByIdentity, nil
	default:
		return ConflictPreferManual, fmt.Errorf("unknown conflict policy: %s", s)
	}
}

// SessionManagerOption configures a SessionManager
type SessionManagerOption func(*SessionManager)

// WithConflictPolicy selects how events race with manual operations
func WithConflictPolicy(policy ConflictPolicy) SessionManagerOption {
	return func(m *SessionManager) {
		m.policy = policy
	}
}

// WithMetrics attaches an observer for transitions and operation outcomes
func WithMetrics(observer port.SessionObserver) SessionManagerOption {
	return func(m *SessionManager) {
		if observer != nil {
			m.observer = observer
		}
	}
}

// WithEventTimeout bounds the profile lookup triggered by a provider event
func WithEventTimeout(timeout time.Duration) SessionManagerOption {
	return func(m *SessionManager) {
		if timeout > 0 {
			m.eventTimeout = timeout
		}
	}
}

type noopObserver struct{}

func (noopObserver) StatusChanged(from, to domain.SessionStatus)    {}
func (noopObserver) OperationCompleted(operation string, err error) {}

// inflight tags the manual operation currently running
type inflight struct {
	seq    uint64
	target uuid.UUID
}

// commitTag records who performed the latest snapshot assignment
type commitTag struct {
	seq        uint64
	identityID uuid.UUID
	fromEvent  bool
}

// SessionManager owns the process-wide session snapshot and keeps it in sync
// with the identity provider and the profile store.
type SessionManager struct {
	provider     port.IdentityProvider
	profiles     port.ProfileStore
	validator    *validator.Validator
	logger       *slog.Logger
	policy       ConflictPolicy
	observer     port.SessionObserver
	eventTimeout time.Duration

	// opMu serializes manual operations, eventMu serializes event resolution.
	opMu    sync.Mutex
	eventMu sync.Mutex

	mu          sync.Mutex
	snapshot    domain.Snapshot
	seq         uint64
	last        commitTag
	inflight    *inflight
	subscribers map[int]chan domain.Snapshot
	nextSubID   int
	started     bool
	closed      bool
	unsubscribe func()

	ctx    context.Context
	cancel context.CancelFunc
}

var _ port.SessionManager = (*SessionManager)(nil)

// NewSessionManager creates a SessionManager in the Loading state
func NewSessionManager(
	provider port.IdentityProvider,
	profiles port.ProfileStore,
	v *validator.Validator,
	log *slog.Logger,
	opts ...SessionManagerOption,
) *SessionManager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &SessionManager{
		provider:     provider,
		profiles:     profiles,
		validator:    v,
		logger:       logger.SessionLogger(log),
		policy:       ConflictPreferManual,
		observer:     noopObserver{},
		eventTimeout: 10 * time.Second,
		snapshot:     domain.LoadingSnapshot(),
		subscribers:  make(map[int]chan domain.Snapshot),
		ctx:          ctx,
		cancel:       cancel,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start resolves the initial session and subscribes to provider events.
// Only the first call has an effect.
func (m *SessionManager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return errors.New("session manager is closed")
	}
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	m.mu.Unlock()

	unsubscribe := m.provider.OnSessionChange(m.handleEvent)

	start := time.Now()
	result := m.resolveCurrent(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.unsubscribe = unsubscribe
	if m.snapshot.Status != domain.StatusLoading {
		m.logger.Debug("initial resolution superseded", "status", m.snapshot.Status)
		return nil
	}
	m.commitLocked(result, identityIDOf(result), false)
	logger.LogDuration(m.logger, start, "session_init", "status", result.Status)
	return nil
}

// Close unsubscribes from the provider and closes every subscriber channel
func (m *SessionManager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	unsubscribe := m.unsubscribe
	for id, ch := range m.subscribers {
		delete(m.subscribers, id)
		close(ch)
	}
	m.mu.Unlock()

	m.cancel()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Snapshot returns a copy of the current session state
func (m *SessionManager) Snapshot() domain.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot.Clone()
}

// Subscribe returns a channel that always holds the latest snapshot.
// The current snapshot is delivered immediately. Slow readers skip
// intermediate values instead of blocking the manager.
func (m *SessionManager) Subscribe() (<-chan domain.Snapshot, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan domain.Snapshot, 1)
	if m.closed {
		close(ch)
		return ch, func() {}
	}

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = ch
	ch <- m.snapshot.Clone()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if sub, ok := m.subscribers[id]; ok {
				delete(m.subscribers, id)
				close(sub)
			}
		})
	}
}

// SignIn authenticates and resolves the profile before returning.
// When authentication fails the prior snapshot is left untouched. When the
// profile cannot be resolved the provider session has already been replaced,
// so it is signed out and the snapshot ends Anonymous.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (snap domain.Snapshot, err error) {
	defer func() { m.observer.OperationCompleted(OpSignIn, err) }()

	req := domain.SignInRequest{Email: strings.TrimSpace(email), Password: password}
	if err := m.validator.Validate(req); err != nil {
		return m.Snapshot(), err
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()
	op := m.beginOperation()
	defer m.endOperation(op)

	start := time.Now()
	identity, err := m.provider.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		m.logger.Warn("sign in rejected", "code", domain.CodeOf(err))
		return m.Snapshot(), classify(err)
	}
	m.setTarget(op, identity.ID)

	result, err := m.resolveProfile(ctx, identity)
	if err != nil {
		m.compensate(ctx, identity.ID, "failed to revert session without profile")
		m.forceCommit(domain.AnonymousSnapshot())
		if errors.Is(err, domain.ErrNotFound) {
			return m.Snapshot(), domain.NewAuthError(domain.ErrCodeUnknown, "no profile exists for this account", err)
		}
		return m.Snapshot(), classify(err)
	}

	snap = m.commitManual(op, result)
	logger.LogDuration(m.logger, start, OpSignIn, "identity_id", identity.ID)
	return snap, nil
}

// SignUp creates the identity, then its profile. When the profile cannot be
// created the new identity is signed back out and the snapshot ends Anonymous.
func (m *SessionManager) SignUp(ctx context.Context, req domain.SignUpRequest) (snap domain.Snapshot, err error) {
	defer func() { m.observer.OperationCompleted(OpSignUp, err) }()

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := m.validator.Validate(req); err != nil {
		return m.Snapshot(), err
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()
	op := m.beginOperation()
	defer m.endOperation(op)

	start := time.Now()
	identity, err := m.provider.Register(ctx, req.Email, req.Password, req.Traits())
	if err != nil {
		m.logger.Warn("registration rejected", "code", domain.CodeOf(err))
		return m.Snapshot(), classify(err)
	}
	m.setTarget(op, identity.ID)

	profile, err := m.profiles.Insert(ctx, &domain.Profile{
		ID:    identity.ID,
		Role:  req.Role,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err == nil && profile == nil {
		err = errors.New("profile store returned no profile")
	}
	if err != nil {
		logger.LogError(m.logger, err, "profile creation failed, signing identity out", "identity_id", identity.ID)
		m.compensate(ctx, identity.ID, "compensating sign out failed")
		m.forceCommit(domain.AnonymousSnapshot())
		return m.Snapshot(), domain.NewAuthError(domain.ErrCodeProfileCreationFailed, "failed to create user profile", err)
	}

	snap = m.commitManual(op, domain.AuthenticatedSnapshot(identity, profile))
	logger.LogDuration(m.logger, start, OpSignUp, "identity_id", identity.ID)
	return snap, nil
}

// compensate signs a half-established identity back out. It outlives the
// caller's context so a dropped request cannot leave the session behind.
func (m *SessionManager) compensate(ctx context.Context, identityID uuid.UUID, failureMsg string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if err := m.provider.Invalidate(ctx); err != nil {
		logger.LogError(m.logger, err, failureMsg, "identity_id", identityID)
	}
}

// SignOut invalidates the remote session and always clears local state.
// A remote failure is still reported as SIGN_OUT_ERROR.
func (m *SessionManager) SignOut(ctx context.Context) (err error) {
	defer func() { m.observer.OperationCompleted(OpSignOut, err) }()

	m.opMu.Lock()
	defer m.opMu.Unlock()
	op := m.beginOperation()
	defer m.endOperation(op)

	remoteErr := m.provider.Invalidate(ctx)
	m.forceCommit(domain.AnonymousSnapshot())

	if remoteErr != nil {
		logger.LogError(m.logger, remoteErr, "remote sign out failed, local session cleared")
		return domain.NewAuthError(domain.ErrCodeSignOut, "failed to sign out from the identity provider", remoteErr)
	}
	m.logger.Info("signed out")
	return nil
}

// UpdateProfile sends the changed fields and replaces the loaded profile with
// the store's representation.
func (m *SessionManager) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (profile *domain.Profile, err error) {
	defer func() { m.observer.OperationCompleted(OpUpdateProfile, err) }()

	if !m.Snapshot().IsAuthenticated() {
		return nil, notAuthenticated()
	}
	if update.IsEmpty() {
		return nil, domain.NewValidationError("profile", "no fields to update")
	}
	if err := m.validator.Validate(update); err != nil {
		return nil, err
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	current := m.Snapshot()
	if !current.IsAuthenticated() {
		return nil, notAuthenticated()
	}
	id := current.Identity.ID

	op := m.beginOperation()
	m.setTarget(op, id)
	defer m.endOperation(op)

	updated, err := m.profiles.Update(ctx, id, update)
	if err == nil && updated == nil {
		err = domain.NewAuthError(domain.ErrCodeUpdateRejected, "profile store returned no profile", nil)
	}
	if err != nil {
		m.logger.Warn("profile update failed", "identity_id", id, "code", domain.CodeOf(err))
		return nil, classify(err)
	}

	m.mu.Lock()
	if m.snapshot.IsAuthenticated() && m.snapshot.Identity.ID == id {
		m.commitLocked(domain.AuthenticatedSnapshot(m.snapshot.Identity, updated), id, false)
	} else {
		m.logger.Info("session changed during profile update, snapshot left as is", "identity_id", id)
	}
	m.mu.Unlock()

	return updated.Clone(), nil
}

// handleEvent re-resolves the session after a provider event. Failures
// degrade to Anonymous because there is no caller to report them to.
func (m *SessionManager) handleEvent(event domain.SessionEvent) {
	m.eventMu.Lock()
	defer m.eventMu.Unlock()

	eventID := uuid.Nil
	if event.Identity != nil {
		eventID = event.Identity.ID
	}
	log := m.logger.With("event", event.Kind, "identity_id", eventID)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	if event.Kind == domain.EventTokenRefreshed && eventID != uuid.Nil &&
		m.snapshot.IsAuthenticated() && m.snapshot.Identity.ID == eventID {
		m.mu.Unlock()
		log.Debug("token refreshed for loaded profile")
		return
	}
	if m.ignoreEventLocked(eventID) {
		m.mu.Unlock()
		log.Info("ignoring session event during manual operation")
		return
	}
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(m.ctx, m.eventTimeout)
	defer cancel()

	var result domain.Snapshot
	switch {
	case event.Kind == domain.EventSignedOut:
		result = domain.AnonymousSnapshot()
	case event.Identity != nil:
		result, _ = m.resolveProfile(ctx, event.Identity)
	default:
		result = m.resolveCurrent(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if m.ignoreEventLocked(eventID) {
		log.Info("dropping session event superseded by manual operation")
		return
	}
	m.commitLocked(result, identityIDOf(result), true)
}

func (m *SessionManager) resolveCurrent(ctx context.Context) domain.Snapshot {
	identity, err := m.provider.CurrentSession(ctx)
	if err != nil {
		logger.LogError(m.logger, err, "failed to query current session")
		return domain.AnonymousSnapshot()
	}
	if identity == nil {
		return domain.AnonymousSnapshot()
	}
	snap, _ := m.resolveProfile(ctx, identity)
	return snap
}

// resolveProfile maps an identity to Authenticated when its profile exists
// and to Anonymous otherwise.
func (m *SessionManager) resolveProfile(ctx context.Context, identity *domain.Identity) (domain.Snapshot, error) {
	profile, err := m.profiles.Get(ctx, identity.ID)
	if err == nil && profile == nil {
		err = domain.NewAuthError(domain.ErrCodeNotFound, "profile not found", nil)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			m.logger.Info("identity has no profile, treating as signed out", "identity_id", identity.ID)
		} else {
			logger.LogError(m.logger, err, "failed to resolve profile", "identity_id", identity.ID)
		}
		return domain.AnonymousSnapshot(), err
	}
	return domain.AuthenticatedSnapshot(identity, profile), nil
}

func (m *SessionManager) beginOperation() *inflight {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	op := &inflight{seq: m.seq}
	m.inflight = op
	return op
}

func (m *SessionManager) setTarget(op *inflight, id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	op.target = id
}

func (m *SessionManager) endOperation(op *inflight) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inflight == op {
		m.inflight = nil
	}
}

func (m *SessionManager) ignoreEventLocked(eventID uuid.UUID) bool {
	if m.policy != ConflictPreferManual || m.inflight == nil {
		return false
	}
	return m.inflight.target == uuid.Nil || m.inflight.target != eventID
}

// commitManual applies a sign-in or sign-up result unless the conflict
// policy says a newer event for another identity wins.
func (m *SessionManager) commitManual(op *inflight, result domain.Snapshot) domain.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := identityIDOf(result)
	if m.policy == ConflictLastWriterByIdentity && m.last.fromEvent && m.last.seq > op.seq && m.last.identityID != id {
		m.logger.Info("manual result superseded by newer session event",
			"identity_id", id,
			"winner_identity_id", m.last.identityID)
		return m.snapshot.Clone()
	}
	m.commitLocked(result, id, false)
	return m.snapshot.Clone()
}

func (m *SessionManager) forceCommit(result domain.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commitLocked(result, identityIDOf(result), false)
}

func (m *SessionManager) commitLocked(next domain.Snapshot, identityID uuid.UUID, fromEvent bool) {
	m.seq++
	m.last = commitTag{seq: m.seq, identityID: identityID, fromEvent: fromEvent}

	// Loading is only ever the initial state.
	if next.Status == domain.StatusLoading || !next.Valid() {
		next = domain.AnonymousSnapshot()
	}

	prev := m.snapshot
	m.snapshot = next
	if prev.Equal(next) {
		return
	}
	if prev.Status != next.Status {
		m.observer.StatusChanged(prev.Status, next.Status)
		m.logger.Info("session status changed", "from", prev.Status, "to", next.Status, "identity_id", identityID)
	}
	m.publishLocked()
}

func (m *SessionManager) publishLocked() {
	for _, ch := range m.subscribers {
		// Only publishLocked and Subscribe send, both under mu, so after
		// draining the stale value the send cannot block.
		select {
		case <-ch:
		default:
		}
		ch <- m.snapshot.Clone()
	}
}

func identityIDOf(s domain.Snapshot) uuid.UUID {
	if s.Identity == nil {
		return uuid.Nil
	}
	return s.Identity.ID
}

func notAuthenticated() error {
	return domain.NewAuthError(domain.ErrCodeNotAuthenticated, "you must be signed in to do that", nil)
}

// classify makes sure an error crossing the manager boundary carries a code.
// Unrecognized errors keep their original message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var authErr *domain.AuthError
	var validationErr *domain.ValidationError
	if errors.As(err, &authErr) || errors.As(err, &validationErr) {
		return err
	}
	return domain.NewAuthError(domain.ErrCodeUnknown, err.Error(), err)
}
