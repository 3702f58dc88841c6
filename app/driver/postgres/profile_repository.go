package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

const profileColumns = `id, role, name, phone, photo_url, created_at`

// ProfileRepository implements port.ProfileStore on the users table
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

var _ port.ProfileStore = (*ProfileRepository)(nil)

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Get returns the profile keyed by the identity id
func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("Failed to get profile", "user_id", id, "error", err)
		}
		return nil, translateError(err, "profile")
	}

	return profile, nil
}

// Insert creates the profile row for a freshly registered identity
func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil {
		return nil, domain.NewValidationError("profile", "profile is required")
	}

	query := `
		INSERT INTO users (id, role, name, phone, photo_url)
		VALUES ($1, $2, btrim($3), btrim($4), NULLIF(btrim($5), ''))
		RETURNING ` + profileColumns

	r.logger.Info("Creating profile", "user_id", profile.ID, "role", profile.Role)

	created, err := scanProfile(r.db.QueryRow(ctx, query,
		profile.ID,
		string(profile.Role),
		profile.Name,
		profile.Phone,
		profile.AvatarURL,
	))
	if err != nil {
		r.logger.Error("Failed to create profile", "user_id", profile.ID, "error", err)
		return nil, translateError(err, "profile")
	}

	r.logger.Info("Profile created successfully", "user_id", created.ID)
	return created, nil
}

// Update applies the set fields of update. Data and constraint refusals surface
// as UPDATE_REJECTED, a missing row as NOT_FOUND; connection failures keep their cause.
func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	query, args := buildProfileUpdate(id, update)
	if query == "" {
		return nil, domain.NewValidationError("profile", "no fields to update")
	}

	updated, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.logger.Error("Failed to update profile", "user_id", id, "error", err)
		if isDataError(err) {
			return nil, domain.NewAuthError(domain.ErrCodeUpdateRejected, "profile update was rejected", translateError(err, "profile"))
		}
		return nil, translateError(err, "profile")
	}

	r.logger.Info("Profile updated", "user_id", id)
	return updated, nil
}

func buildProfileUpdate(id uuid.UUID, update domain.ProfileUpdate) (string, []interface{}) {
	var sets []string
	args := []interface{}{id}

	if update.Name != nil {
		args = append(args, *update.Name)
		sets = append(sets, fmt.Sprintf("name = btrim($%d)", len(args)))
	}
	if update.Phone != nil {
		args = append(args, *update.Phone)
		sets = append(sets, fmt.Sprintf("phone = btrim($%d)", len(args)))
	}
	if update.AvatarURL != nil {
		args = append(args, *update.AvatarURL)
		sets = append(sets, fmt.Sprintf("photo_url = NULLIF(btrim($%d), '')", len(args)))
	}

	if len(sets) == 0 {
		return "", nil
	}

	sets = append(sets, "updated_at = now()")
	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + profileColumns
	return query, args
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		profile domain.Profile
		role    string
	)

	if err := row.Scan(
		&profile.ID,
		&role,
		&profile.Name,
		&profile.Phone,
		&profile.AvatarURL,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}

	profile.Role = domain.Role(role)
	return &profile, nil
}
