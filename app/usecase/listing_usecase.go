package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
	"rental-frontend/app/search"
	"rental-frontend/app/utils/validator"
)

// Listing query kinds reported to the recorder
const (
	QueryFilters = "filters"
	QueryNatural = "natural"
)

// ListingQueryRecorder counts listing searches
type ListingQueryRecorder interface {
	RecordListingQuery(kind string)
}

// ListingStores groups the repositories behind the marketplace
type ListingStores struct {
	Listings      port.ListingRepository
	Saved         port.SavedListingRepository
	Messages      port.MessageRepository
	Notifications port.NotificationRepository
	Preferences   port.SearchPreferenceRepository
}

// ListingUsecase implements port.ListingUsecase. Every operation is authorized
// against the current session snapshot.
type ListingUsecase struct {
	session   port.SessionManager
	stores    ListingStores
	parser    *search.Parser
	validator *validator.Validator
	recorder  ListingQueryRecorder
	logger    *slog.Logger
}

var _ port.ListingUsecase = (*ListingUsecase)(nil)

// NewListingUsecase creates a new listing usecase; recorder may be nil
func NewListingUsecase(
	session port.SessionManager,
	stores ListingStores,
	parser *search.Parser,
	validator *validator.Validator,
	recorder ListingQueryRecorder,
	logger *slog.Logger,
) *ListingUsecase {
	return &ListingUsecase{
		session:   session,
		stores:    stores,
		parser:    parser,
		validator: validator,
		recorder:  recorder,
		logger:    logger.With("component", "listing_usecase"),
	}
}

// Search returns listings matching explicit filters; anonymous users may search
func (u *ListingUsecase) Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Listing, error) {
	u.record(QueryFilters)
	return u.stores.Listings.Search(ctx, filters)
}

// NaturalSearch parses free text into filters and runs the search. For a signed-in
// user the parsed filters are remembered as their search preference.
func (u *ListingUsecase) NaturalSearch(ctx context.Context, text string) (domain.SearchFilters, []*domain.Listing, error) {
	if strings.TrimSpace(text) == "" {
		return domain.SearchFilters{}, nil, domain.NewValidationError("q", "search text is required")
	}

	filters := u.parser.Parse(text)
	u.record(QueryNatural)

	listings, err := u.stores.Listings.Search(ctx, filters)
	if err != nil {
		return filters, nil, err
	}

	if snap := u.session.Snapshot(); snap.IsAuthenticated() && !filters.IsEmpty() {
		if _, err := u.stores.Preferences.Save(ctx, snap.Profile.ID, filters); err != nil {
			u.logger.Warn("Failed to remember search preference", "user_id", snap.Profile.ID, "error", err)
		}
	}

	return filters, listings, nil
}

// CreateListing publishes a listing owned by the signed-in agent
func (u *ListingUsecase) CreateListing(ctx context.Context, listing domain.NewListing) (*domain.Listing, error) {
	profile, err := u.requireRole(domain.RoleAgent)
	if err != nil {
		return nil, err
	}

	if err := u.validator.Validate(listing); err != nil {
		return nil, err
	}

	created, err := u.stores.Listings.Create(ctx, profile.ID, listing)
	if err != nil {
		u.logger.Error("Failed to create listing", "user_id", profile.ID, "error", err)
		return nil, err
	}
	return created, nil
}

// MyListings returns the signed-in agent's listings
func (u *ListingUsecase) MyListings(ctx context.Context) ([]*domain.Listing, error) {
	profile, err := u.requireRole(domain.RoleAgent)
	if err != nil {
		return nil, err
	}
	return u.stores.Listings.ListByOwner(ctx, profile.ID)
}

// DeleteListing removes one of the signed-in agent's listings
func (u *ListingUsecase) DeleteListing(ctx context.Context, id uuid.UUID) error {
	profile, err := u.requireRole(domain.RoleAgent)
	if err != nil {
		return err
	}
	return u.stores.Listings.Delete(ctx, profile.ID, id)
}

// ToggleSaved saves a listing for the signed-in renter, or unsaves it if it was
// already saved. It returns whether the listing is saved afterwards.
func (u *ListingUsecase) ToggleSaved(ctx context.Context, listingID uuid.UUID) (bool, error) {
	profile, err := u.requireRole(domain.RoleRenter)
	if err != nil {
		return false, err
	}

	removed, err := u.stores.Saved.Remove(ctx, profile.ID, listingID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	if err := u.stores.Saved.Save(ctx, profile.ID, listingID); err != nil {
		return false, err
	}
	return true, nil
}

// SavedListings returns the signed-in renter's saved listings
func (u *ListingUsecase) SavedListings(ctx context.Context) ([]*domain.SavedListing, error) {
	profile, err := u.requireRole(domain.RoleRenter)
	if err != nil {
		return nil, err
	}
	return u.stores.Saved.List(ctx, profile.ID)
}

// SendMessage sends a direct message from the signed-in user
func (u *ListingUsecase) SendMessage(ctx context.Context, msg domain.NewMessage) (*domain.Message, error) {
	profile, err := u.currentProfile()
	if err != nil {
		return nil, err
	}

	if err := u.validator.Validate(msg); err != nil {
		return nil, err
	}
	if msg.ToUserID == profile.ID {
		return nil, domain.NewValidationError("to_user_id", "cannot send a message to yourself")
	}

	return u.stores.Messages.Send(ctx, profile.ID, msg)
}

// Inbox returns messages sent or received by the signed-in user
func (u *ListingUsecase) Inbox(ctx context.Context) ([]*domain.Message, error) {
	profile, err := u.currentProfile()
	if err != nil {
		return nil, err
	}
	return u.stores.Messages.ListForUser(ctx, profile.ID)
}

// Notifications returns the signed-in user's notifications
func (u *ListingUsecase) Notifications(ctx context.Context, unreadOnly bool) ([]*domain.Notification, error) {
	profile, err := u.currentProfile()
	if err != nil {
		return nil, err
	}
	return u.stores.Notifications.ListForUser(ctx, profile.ID, unreadOnly)
}

// MarkNotificationRead flags a notification of the signed-in user as read
func (u *ListingUsecase) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	profile, err := u.currentProfile()
	if err != nil {
		return err
	}
	return u.stores.Notifications.MarkRead(ctx, profile.ID, id)
}

// SearchPreference returns the signed-in user's remembered search
func (u *ListingUsecase) SearchPreference(ctx context.Context) (*domain.SearchPreference, error) {
	profile, err := u.currentProfile()
	if err != nil {
		return nil, err
	}
	return u.stores.Preferences.Latest(ctx, profile.ID)
}

func (u *ListingUsecase) currentProfile() (*domain.Profile, error) {
	snap := u.session.Snapshot()
	if !snap.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return snap.Profile, nil
}

func (u *ListingUsecase) requireRole(role domain.Role) (*domain.Profile, error) {
	profile, err := u.currentProfile()
	if err != nil {
		return nil, err
	}
	if profile.Role != role {
		return nil, domain.NewAuthError(domain.ErrCodeForbidden, "only "+string(role)+"s can do this", nil)
	}
	return profile, nil
}

func (u *ListingUsecase) record(kind string) {
	if u.recorder != nil {
		u.recorder.RecordListingQuery(kind)
	}
}
