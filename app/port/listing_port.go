package port

//go:generate mockgen -source=listing_port.go -destination=../mocks/mock_listing_port.go

import (
	"context"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
)

// ListingRepository persists listings
type ListingRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, listing domain.NewListing) (*domain.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Listing, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// SavedListingRepository persists the listings a renter saved
type SavedListingRepository interface {
	Save(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedListing, error)
}

// MessageRepository persists direct messages
type MessageRepository interface {
	Send(ctx context.Context, fromUserID uuid.UUID, msg domain.NewMessage) (*domain.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error)
}

// NotificationRepository persists user notifications
type NotificationRepository interface {
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

// SearchPreferenceRepository persists the latest search of each user
type SearchPreferenceRepository interface {
	Save(ctx context.Context, userID uuid.UUID, filters domain.SearchFilters) (*domain.SearchPreference, error)
	Latest(ctx context.Context, userID uuid.UUID) (*domain.SearchPreference, error)
}

// ListingUsecase defines the marketplace operations available to the current user
type ListingUsecase interface {
	Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Listing, error)
	NaturalSearch(ctx context.Context, text string) (domain.SearchFilters, []*domain.Listing, error)
	CreateListing(ctx context.Context, listing domain.NewListing) (*domain.Listing, error)
	MyListings(ctx context.Context) ([]*domain.Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
	ToggleSaved(ctx context.Context, listingID uuid.UUID) (bool, error)
	SavedListings(ctx context.Context) ([]*domain.SavedListing, error)
	SendMessage(ctx context.Context, msg domain.NewMessage) (*domain.Message, error)
	Inbox(ctx context.Context) ([]*domain.Message, error)
	Notifications(ctx context.Context, unreadOnly bool) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
	SearchPreference(ctx context.Context) (*domain.SearchPreference, error)
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
