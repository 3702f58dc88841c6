package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

const listingColumns = `id, user_id, title, description, location, subcity, price, bedrooms, bathrooms, ` +
	`area_sqm, property_type, features, photos, latitude, longitude, created_at`

// ListingRepository implements port.ListingRepository
type ListingRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

var _ port.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new PostgreSQL listing repository
func NewListingRepository(db DatabaseIface, logger *slog.Logger) *ListingRepository {
	return &ListingRepository{
		db:     db,
		logger: logger.With("component", "listing_repository"),
	}
}

// Create inserts a listing owned by ownerID
func (r *ListingRepository) Create(ctx context.Context, ownerID uuid.UUID, listing domain.NewListing) (*domain.Listing, error) {
	query := `
		INSERT INTO listings (
			id, user_id, title, description, location, subcity, price, bedrooms, bathrooms,
			area_sqm, property_type, features, photos, latitude, longitude
		) VALUES (
			$1, $2, btrim($3), btrim($4), btrim($5), $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING ` + listingColumns

	var lat, lng *float64
	if listing.Coordinates != nil {
		lat = &listing.Coordinates.Lat
		lng = &listing.Coordinates.Lng
	}

	features := listing.Features
	if features == nil {
		features = []string{}
	}
	photos := listing.Photos
	if photos == nil {
		photos = []string{}
	}

	id := uuid.New()
	r.logger.Info("Creating listing", "listing_id", id, "user_id", ownerID)

	created, err := scanListing(r.db.QueryRow(ctx, query,
		id,
		ownerID,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.Subcity,
		listing.Price,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.AreaSqm,
		string(listing.PropertyType),
		features,
		photos,
		lat,
		lng,
	))
	if err != nil {
		r.logger.Error("Failed to create listing", "user_id", ownerID, "error", err)
		return nil, translateError(err, "listing")
	}

	r.logger.Info("Listing created successfully", "listing_id", created.ID)
	return created, nil
}

// Get returns one listing
func (r *ListingRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	listing, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "listing")
	}
	return listing, nil
}

// Search returns listings matching filters, newest first
func (r *ListingRepository) Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Listing, error) {
	query, args := buildSearchQuery(filters.Normalize())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to search listings", "error", err)
		return nil, translateError(err, "listing")
	}

	return collectListings(rows)
}

// ListByOwner returns the listings an agent published, newest first
func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error("Failed to list listings by owner", "user_id", ownerID, "error", err)
		return nil, translateError(err, "listing")
	}

	return collectListings(rows)
}

// Delete removes a listing only when ownerID owns it
func (r *ListingRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		r.logger.Error("Failed to delete listing", "listing_id", id, "error", err)
		return translateError(err, "listing")
	}

	if tag.RowsAffected() == 0 {
		return domain.NewAuthError(domain.ErrCodeNotFound, "listing not found", nil)
	}

	r.logger.Info("Listing deleted", "listing_id", id, "user_id", ownerID)
	return nil
}

func buildSearchQuery(filters domain.SearchFilters) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	add := func(format string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if location := strings.TrimSpace(filters.Location); location != "" {
		add("(location ILIKE $%d OR subcity ILIKE $%[1]d)", "%"+location+"%")
	}
	if filters.Bedrooms != nil {
		add("bedrooms >= $%d", *filters.Bedrooms)
	}
	if filters.MinPrice != nil {
		add("price >= $%d", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		add("price <= $%d", *filters.MaxPrice)
	}
	if filters.PropertyType != "" {
		add("property_type = $%d", string(filters.PropertyType))
	}
	if len(filters.Features) > 0 {
		add("features @> $%d", filters.Features)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + listingColumns + ` FROM listings`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	args = append(args, filters.Limit, filters.Offset)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args
}

func collectListings(rows pgx.Rows) ([]*domain.Listing, error) {
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError(err, "listing")
	}

	return listings, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		listing      domain.Listing
		propertyType string
		lat, lng     *float64
	)

	if err := row.Scan(
		&listing.ID,
		&listing.OwnerID,
		&listing.Title,
		&listing.Description,
		&listing.Location,
		&listing.Subcity,
		&listing.Price,
		&listing.Bedrooms,
		&listing.Bathrooms,
		&listing.AreaSqm,
		&propertyType,
		&listing.Features,
		&listing.Photos,
		&lat,
		&lng,
		&listing.CreatedAt,
	); err != nil {
		return nil, err
	}

	listing.PropertyType = domain.PropertyType(propertyType)
	if lat != nil && lng != nil {
		listing.Coordinates = &domain.Coordinates{Lat: *lat, Lng: *lng}
	}
	if listing.Features == nil {
		listing.Features = []string{}
	}
	if listing.Photos == nil {
		listing.Photos = []string{}
	}

	return &listing, nil
}
