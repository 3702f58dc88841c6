package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
)

// SessionListener receives session changes reported by the identity provider
type SessionListener func(event domain.SessionEvent)

// IdentityProvider is the remote authority for credentials and sessions.
// Errors are classified into the domain taxonomy before they are returned.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, email, password string, metadata map[string]any) (*domain.Identity, error)
	Invalidate(ctx context.Context) error
	// CurrentSession returns nil, nil when no valid session exists.
	CurrentSession(ctx context.Context) (*domain.Identity, error)
	OnSessionChange(listener SessionListener) (unsubscribe func())
}

// ProfileStore is the keyed record store holding user profiles
type ProfileStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)
}
