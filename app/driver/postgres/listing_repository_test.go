package postgres

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-frontend/app/domain"
	"rental-frontend/app/utils/logger"
)

var listingRowColumns = []string{
	"id", "user_id", "title", "description", "location", "subcity", "price", "bedrooms", "bathrooms",
	"area_sqm", "property_type", "features", "photos", "latitude", "longitude", "created_at",
}

func createTestListingRepository(t *testing.T) (*ListingRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return NewListingRepository(mockDB, logger.Discard()), mockDB
}

func floatPtr(f float64) *float64 { return &f }

func listingRow(rows *pgxmock.Rows, id, owner uuid.UUID, title string, created time.Time) *pgxmock.Rows {
	return rows.AddRow(id, owner, title, "Sunny and quiet", "Bole, Addis Ababa", "Bole", int64(15000), 2, 1,
		float64(85), "apartment", []string{"WiFi", "Parking"}, []string{"https://cdn.example.com/1.jpg"},
		floatPtr(8.99), floatPtr(38.79), created)
}

func TestListingRepository_Create(t *testing.T) {
	owner := uuid.New()
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	input := domain.NewListing{
		Title:        "2BR in Bole",
		Description:  "Sunny and quiet",
		Location:     "Bole, Addis Ababa",
		Subcity:      "Bole",
		Price:        15000,
		Bedrooms:     2,
		Bathrooms:    1,
		AreaSqm:      85,
		PropertyType: domain.PropertyApartment,
		Features:     []string{"WiFi", "Parking"},
		Photos:       []string{"https://cdn.example.com/1.jpg"},
		Coordinates:  &domain.Coordinates{Lat: 8.99, Lng: 38.79},
	}

	t.Run("created", func(t *testing.T) {
		repo, mockDB := createTestListingRepository(t)
		id := uuid.New()
		mockDB.ExpectQuery(`INSERT INTO listings`).
			WithArgs(pgxmock.AnyArg(), owner, input.Title, input.Description, input.Location, input.Subcity,
				input.Price, input.Bedrooms, input.Bathrooms, input.AreaSqm, "apartment",
				input.Features, input.Photos, floatPtr(8.99), floatPtr(38.79)).
			WillReturnRows(listingRow(pgxmock.NewRows(listingRowColumns), id, owner, input.Title, created))

		got, err := repo.Create(context.Background(), owner, input)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, owner, got.OwnerID)
		assert.Equal(t, domain.PropertyApartment, got.PropertyType)
		require.NotNil(t, got.Coordinates)
		assert.Equal(t, 8.99, got.Coordinates.Lat)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("owner missing", func(t *testing.T) {
		repo, mockDB := createTestListingRepository(t)
		mockDB.ExpectQuery(`INSERT INTO listings`).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, err := repo.Create(context.Background(), owner, input)

		assert.Equal(t, domain.ErrCodeNotFound, domain.CodeOf(err))
	})
}

func TestListingRepository_Search(t *testing.T) {
	owner := uuid.New()
	now := time.Now().UTC()
	bedrooms := 2
	maxPrice := int64(20000)

	repo, mockDB := createTestListingRepository(t)
	rows := pgxmock.NewRows(listingRowColumns)
	listingRow(rows, uuid.New(), owner, "Newest", now)
	listingRow(rows, uuid.New(), owner, "Older", now.Add(-time.Hour))

	mockDB.ExpectQuery(`SELECT (.+) FROM listings WHERE \(location ILIKE \$1 OR subcity ILIKE \$1\) AND bedrooms >= \$2 AND price <= \$3 ORDER BY created_at DESC LIMIT \$4 OFFSET \$5`).
		WithArgs("%bole%", 2, int64(20000), domain.DefaultPageSize, 0).
		WillReturnRows(rows)

	got, err := repo.Search(context.Background(), domain.SearchFilters{
		Location: "bole",
		Bedrooms: &bedrooms,
		MaxPrice: &maxPrice,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newest", got[0].Title)
	assert.Equal(t, []string{"WiFi", "Parking"}, got[1].Features)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBuildSearchQuery(t *testing.T) {
	minPrice := int64(5000)

	tests := []struct {
		name      string
		filters   domain.SearchFilters
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "no filters",
			filters:   domain.SearchFilters{Limit: 10},
			wantWhere: "",
			wantArgs:  []interface{}{10, 0},
		},
		{
			name: "price type and features",
			filters: domain.SearchFilters{
				MinPrice:     &minPrice,
				PropertyType: domain.PropertyVilla,
				Features:     []string{"Garden"},
				Limit:        20,
				Offset:       40,
			},
			wantWhere: " WHERE price >= $1 AND property_type = $2 AND features @> $3",
			wantArgs:  []interface{}{int64(5000), "villa", []string{"Garden"}, 20, 40},
		},
		{
			name:      "blank location ignored",
			filters:   domain.SearchFilters{Location: "   ", Limit: 5},
			wantWhere: "",
			wantArgs:  []interface{}{5, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildSearchQuery(tt.filters)

			n := len(tt.wantArgs)
			wantQuery := "SELECT " + listingColumns + " FROM listings" + tt.wantWhere +
				" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(n-1) + " OFFSET $" + strconv.Itoa(n)
			assert.Equal(t, wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestListingRepository_Get(t *testing.T) {
	repo, mockDB := createTestListingRepository(t)
	id := uuid.New()
	mockDB.ExpectQuery(`SELECT (.+) FROM listings WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), id)

	assert.Equal(t, domain.ErrCodeNotFound, domain.CodeOf(err))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestListingRepository_ListByOwner(t *testing.T) {
	repo, mockDB := createTestListingRepository(t)
	owner := uuid.New()
	mockDB.ExpectQuery(`SELECT (.+) FROM listings WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(owner).
		WillReturnRows(listingRow(pgxmock.NewRows(listingRowColumns), uuid.New(), owner, "Mine", time.Now()))

	got, err := repo.ListByOwner(context.Background(), owner)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, owner, got[0].OwnerID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestListingRepository_Delete(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		wantCode domain.ErrorCode
	}{
		{name: "owned listing", affected: 1},
		{name: "not owned or missing", affected: 0, wantCode: domain.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestListingRepository(t)
			mockDB.ExpectExec(`DELETE FROM listings WHERE id = \$1 AND user_id = \$2`).
				WithArgs(id, owner).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := repo.Delete(context.Background(), owner, id)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, domain.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
