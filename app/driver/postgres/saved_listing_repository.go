package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// SavedListingRepository implements port.SavedListingRepository
type SavedListingRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

var _ port.SavedListingRepository = (*SavedListingRepository)(nil)

// NewSavedListingRepository creates a new PostgreSQL saved listing repository
func NewSavedListingRepository(db DatabaseIface, logger *slog.Logger) *SavedListingRepository {
	return &SavedListingRepository{
		db:     db,
		logger: logger.With("component", "saved_listing_repository"),
	}
}

// Save bookmarks a listing; saving twice is a no-op
func (r *SavedListingRepository) Save(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `
		INSERT INTO saved_listings (id, user_id, listing_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, listing_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, uuid.New(), userID, listingID); err != nil {
		r.logger.Error("Failed to save listing", "user_id", userID, "listing_id", listingID, "error", err)
		return translateError(err, "saved listing")
	}
	return nil
}

// Remove deletes a bookmark and reports whether one existed
func (r *SavedListingRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_listings WHERE user_id = $1 AND listing_id = $2`, userID, listingID)
	if err != nil {
		r.logger.Error("Failed to remove saved listing", "user_id", userID, "listing_id", listingID, "error", err)
		return false, translateError(err, "saved listing")
	}
	return tag.RowsAffected() > 0, nil
}

// ListIDs returns the ids of every listing the user saved
func (r *SavedListingRepository) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT listing_id FROM saved_listings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, translateError(err, "saved listing")
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan saved listing id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "saved listing")
	}
	return ids, nil
}

// List returns the user's bookmarks joined with their listings
func (r *SavedListingRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedListing, error) {
	query := `
		SELECT s.id, s.user_id, s.listing_id, s.created_at,
			l.id, l.user_id, l.title, l.description, l.location, l.subcity, l.price, l.bedrooms, l.bathrooms,
			l.area_sqm, l.property_type, l.features, l.photos, l.latitude, l.longitude, l.created_at
		FROM saved_listings s
		JOIN listings l ON l.id = s.listing_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list saved listings", "user_id", userID, "error", err)
		return nil, translateError(err, "saved listing")
	}
	defer rows.Close()

	saved := make([]*domain.SavedListing, 0)
	for rows.Next() {
		var (
			item         domain.SavedListing
			listing      domain.Listing
			propertyType string
			lat, lng     *float64
		)
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ListingID, &item.CreatedAt,
			&listing.ID, &listing.OwnerID, &listing.Title, &listing.Description, &listing.Location,
			&listing.Subcity, &listing.Price, &listing.Bedrooms, &listing.Bathrooms, &listing.AreaSqm,
			&propertyType, &listing.Features, &listing.Photos, &lat, &lng, &listing.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan saved listing: %w", err)
		}

		listing.PropertyType = domain.PropertyType(propertyType)
		if lat != nil && lng != nil {
			listing.Coordinates = &domain.Coordinates{Lat: *lat, Lng: *lng}
		}
		item.Listing = &listing
		saved = append(saved, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "saved listing")
	}

	return saved, nil
}
