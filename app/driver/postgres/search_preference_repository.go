package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

const searchPreferenceColumns = `id, user_id, location, min_price, max_price, bedrooms, features, created_at`

// SearchPreferenceRepository implements port.SearchPreferenceRepository.
// Each user keeps a single row that is overwritten by the latest search.
type SearchPreferenceRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

var _ port.SearchPreferenceRepository = (*SearchPreferenceRepository)(nil)

// NewSearchPreferenceRepository creates a new PostgreSQL search preference repository
func NewSearchPreferenceRepository(db DatabaseIface, logger *slog.Logger) *SearchPreferenceRepository {
	return &SearchPreferenceRepository{
		db:     db,
		logger: logger.With("component", "search_preference_repository"),
	}
}

// Save upserts the user's search preference
func (r *SearchPreferenceRepository) Save(ctx context.Context, userID uuid.UUID, filters domain.SearchFilters) (*domain.SearchPreference, error) {
	query := `
		INSERT INTO search_preferences (id, user_id, location, min_price, max_price, bedrooms, features)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			location = EXCLUDED.location,
			min_price = EXCLUDED.min_price,
			max_price = EXCLUDED.max_price,
			bedrooms = EXCLUDED.bedrooms,
			features = EXCLUDED.features,
			created_at = now()
		RETURNING ` + searchPreferenceColumns

	features := filters.Features
	if features == nil {
		features = []string{}
	}

	pref, err := scanSearchPreference(r.db.QueryRow(ctx, query,
		uuid.New(), userID, filters.Location, filters.MinPrice, filters.MaxPrice, filters.Bedrooms, features,
	))
	if err != nil {
		r.logger.Error("Failed to save search preference", "user_id", userID, "error", err)
		return nil, translateError(err, "search preference")
	}
	return pref, nil
}

// Latest returns the stored preference or a NOT_FOUND error
func (r *SearchPreferenceRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.SearchPreference, error) {
	query := `SELECT ` + searchPreferenceColumns + ` FROM search_preferences WHERE user_id = $1`

	pref, err := scanSearchPreference(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, translateError(err, "search preference")
	}
	return pref, nil
}

func scanSearchPreference(row pgx.Row) (*domain.SearchPreference, error) {
	var (
		pref     domain.SearchPreference
		location *string
	)

	if err := row.Scan(
		&pref.ID,
		&pref.UserID,
		&location,
		&pref.MinPrice,
		&pref.MaxPrice,
		&pref.Bedrooms,
		&pref.Features,
		&pref.CreatedAt,
	); err != nil {
		return nil, err
	}

	if location != nil {
		pref.Location = *location
	}
	if pref.Features == nil {
		pref.Features = []string{}
	}
	return &pref, nil
}
