package domain

// SessionStatus is the resolution state of the current session
type SessionStatus string

const (
	StatusLoading       SessionStatus = "loading"
	StatusAuthenticated SessionStatus = "authenticated"
	StatusAnonymous     SessionStatus = "anonymous"
)

// Snapshot is a read-only view of who is logged in.
// Status is Authenticated exactly when both Identity and Profile are set.
type Snapshot struct {
	Identity *Identity     `json:"identity"`
	Profile  *Profile      `json:"profile"`
	Status   SessionStatus `json:"status"`
}

// LoadingSnapshot is the state before the first resolution
func LoadingSnapshot() Snapshot {
	return Snapshot{Status: StatusLoading}
}

// AnonymousSnapshot is the state with nobody logged in
func AnonymousSnapshot() Snapshot {
	return Snapshot{Status: StatusAnonymous}
}

// AuthenticatedSnapshot builds a snapshot for a resolved identity and profile.
// A missing profile yields an anonymous snapshot.
func AuthenticatedSnapshot(identity *Identity, profile *Profile) Snapshot {
	if identity == nil || profile == nil {
		return AnonymousSnapshot()
	}
	return Snapshot{Identity: identity, Profile: profile, Status: StatusAuthenticated}
}

// Valid checks the status/identity/profile invariant
func (s Snapshot) Valid() bool {
	switch s.Status {
	case StatusAuthenticated:
		return s.Identity != nil && s.Profile != nil
	case StatusAnonymous, StatusLoading:
		return s.Identity == nil && s.Profile == nil
	default:
		return false
	}
}

// IsAuthenticated returns true if a user with a profile is logged in
func (s Snapshot) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// Clone returns a deep copy so callers cannot mutate shared state
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{Status: s.Status, Profile: s.Profile.Clone()}
	if s.Identity != nil {
		identity := *s.Identity
		c.Identity = &identity
	}
	return c
}

// Equal reports whether two snapshots are observably identical
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Status != o.Status {
		return false
	}
	if (s.Identity == nil) != (o.Identity == nil) {
		return false
	}
	if s.Identity != nil {
		if s.Identity.ID != o.Identity.ID || s.Identity.Email != o.Identity.Email {
			return false
		}
	}
	return s.Profile.Equal(o.Profile)
}

// SessionEventKind names a session change reported by the identity provider
type SessionEventKind string

const (
	EventSignedIn       SessionEventKind = "signed_in"
	EventSignedOut      SessionEventKind = "signed_out"
	EventTokenRefreshed SessionEventKind = "token_refreshed"
	EventUserUpdated    SessionEventKind = "user_updated"
)

// SessionEvent is emitted asynchronously on session change
type SessionEvent struct {
	Kind     SessionEventKind
	Identity *Identity
}
