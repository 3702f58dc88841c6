package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-frontend/app/domain"
	"rental-frontend/app/driver/postgres"
	"rental-frontend/app/utils/logger"
)

func setupDatabase(t *testing.T) *postgres.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	cfg, ok := TestConfig()
	if !ok {
		t.Skip(DatabaseURLEnv + " not set")
	}

	ctx := context.Background()
	db, err := WaitForDatabase(ctx, cfg)
	require.NoError(t, err, "database should be ready")
	t.Cleanup(db.Close)

	require.NoError(t, Migrate(ctx, cfg), "migrations should apply")
	return db
}

func TestDatabaseIntegration(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	require.NoError(t, db.HealthCheck(ctx))

	var result int
	require.NoError(t, db.Pool().QueryRow(ctx, "SELECT 1").Scan(&result))
	assert.Equal(t, 1, result)
}

func TestMarketplaceIntegration(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	log := logger.Discard()

	profiles := postgres.NewProfileRepository(db.Pool(), log)
	listings := postgres.NewListingRepository(db.Pool(), log)
	saved := postgres.NewSavedListingRepository(db.Pool(), log)
	messages := postgres.NewMessageRepository(db.Pool(), log)
	preferences := postgres.NewSearchPreferenceRepository(db.Pool(), log)

	agent, err := profiles.Insert(ctx, &domain.Profile{ID: uuid.New(), Role: domain.RoleAgent, Name: "Abebe", Phone: "+251911000000"})
	require.NoError(t, err)
	renter, err := profiles.Insert(ctx, &domain.Profile{ID: uuid.New(), Role: domain.RoleRenter, Name: "Sara", Phone: "+251922000000"})
	require.NoError(t, err)

	_, err = profiles.Insert(ctx, &domain.Profile{ID: renter.ID, Role: domain.RoleRenter, Name: "Sara", Phone: "+251922000000"})
	assert.Equal(t, domain.ErrCodeConflict, domain.CodeOf(err), "duplicate profile id")

	subcity := "Integration-" + uuid.NewString()[:8]
	listing, err := listings.Create(ctx, agent.ID, domain.NewListing{
		Title:        "2BR near the ring road",
		Description:  "Bright apartment",
		Location:     "Addis Ababa",
		Subcity:      subcity,
		Price:        18000,
		Bedrooms:     2,
		Bathrooms:    1,
		AreaSqm:      90,
		PropertyType: domain.PropertyApartment,
		Features:     []string{"WiFi", "Parking"},
		Coordinates:  &domain.Coordinates{Lat: 9.01, Lng: 38.76},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = listings.Delete(context.Background(), agent.ID, listing.ID) })

	t.Run("search by subcity and features", func(t *testing.T) {
		found, err := listings.Search(ctx, domain.SearchFilters{Location: subcity, Features: []string{"WiFi"}})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, listing.ID, found[0].ID)

		found, err = listings.Search(ctx, domain.SearchFilters{Location: subcity, Features: []string{"Pool"}})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("saved listings toggle", func(t *testing.T) {
		require.NoError(t, saved.Save(ctx, renter.ID, listing.ID))
		require.NoError(t, saved.Save(ctx, renter.ID, listing.ID))

		ids, err := saved.ListIDs(ctx, renter.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{listing.ID}, ids)

		removed, err := saved.Remove(ctx, renter.ID, listing.ID)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("messages", func(t *testing.T) {
		sent, err := messages.Send(ctx, renter.ID, domain.NewMessage{ToUserID: agent.ID, ListingID: &listing.ID, Content: "Is it available?"})
		require.NoError(t, err)

		inbox, err := messages.ListForUser(ctx, agent.ID)
		require.NoError(t, err)
		require.NotEmpty(t, inbox)
		assert.Equal(t, sent.ID, inbox[0].ID)
	})

	t.Run("search preference upsert", func(t *testing.T) {
		maxPrice := int64(20000)
		_, err := preferences.Save(ctx, renter.ID, domain.SearchFilters{Location: "bole"})
		require.NoError(t, err)
		_, err = preferences.Save(ctx, renter.ID, domain.SearchFilters{MaxPrice: &maxPrice})
		require.NoError(t, err)

		latest, err := preferences.Latest(ctx, renter.ID)
		require.NoError(t, err)
		assert.Empty(t, latest.Location)
		require.NotNil(t, latest.MaxPrice)
		assert.Equal(t, maxPrice, *latest.MaxPrice)
	})

	t.Run("delete requires ownership", func(t *testing.T) {
		err := listings.Delete(ctx, renter.ID, listing.ID)
		assert.Equal(t, domain.ErrCodeNotFound, domain.CodeOf(err))
	})
}
