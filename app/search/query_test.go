package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-frontend/app/domain"
)

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      domain.SearchFilters
		wantField string
	}{
		{
			name:  "empty",
			query: "",
			want:  domain.SearchFilters{},
		},
		{
			name:  "all filters",
			query: "location=Bole&minPrice=5000&maxPrice=20000&bedrooms=2&propertyType=Apartment&features=WiFi,%20Parking&features=Garden&limit=10&offset=20",
			want: domain.SearchFilters{
				Location:     "Bole",
				MinPrice:     int64Ptr(5000),
				MaxPrice:     int64Ptr(20000),
				Bedrooms:     intPtr(2),
				PropertyType: domain.PropertyApartment,
				Features:     []string{"WiFi", "Parking", "Garden"},
				Limit:        10,
				Offset:       20,
			},
		},
		{name: "bad number", query: "maxPrice=cheap", wantField: "maxPrice"},
		{name: "negative bedrooms", query: "bedrooms=-1", wantField: "bedrooms"},
		{name: "inverted range", query: "minPrice=30000&maxPrice=10000", wantField: "minPrice"},
		{name: "unknown property type", query: "propertyType=castle", wantField: "propertyType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := FiltersFromQuery(q)

			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.wantField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
