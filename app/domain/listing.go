package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType is the kind of property offered in a listing
type PropertyType string

const (
	PropertyApartment   PropertyType = "apartment"
	PropertyHouse       PropertyType = "house"
	PropertyVilla       PropertyType = "villa"
	PropertyCondominium PropertyType = "condominium"
	PropertyOffice      PropertyType = "office"
	PropertyShop        PropertyType = "shop"
	PropertyWarehouse   PropertyType = "warehouse"
	PropertyStudio      PropertyType = "studio"
)

// PropertyTypes lists every supported property type
var PropertyTypes = []PropertyType{
	PropertyApartment,
	PropertyHouse,
	PropertyVilla,
	PropertyCondominium,
	PropertyOffice,
	PropertyShop,
	PropertyWarehouse,
	PropertyStudio,
}

// Valid reports whether t is a supported property type
func (t PropertyType) Valid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Subcities of Addis Ababa offered by the listing wizard
var Subcities = []string{
	"Addis Ketema", "Akaky Kaliti", "Arada", "Bole", "Gullele",
	"Kirkos", "Kolfe Keranio", "Lideta", "Nifas Silk-Lafto", "Yeka",
}

// Coordinates is a point picked on the map
type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Listing is a property offered for rent by an agent
type Listing struct {
	ID           uuid.UUID    `json:"id"`
	OwnerID      uuid.UUID    `json:"user_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Subcity      string       `json:"subcity,omitempty"`
	Price        int64        `json:"price"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	AreaSqm      float64      `json:"area_sqm"`
	PropertyType PropertyType `json:"property_type"`
	Features     []string     `json:"features"`
	Photos       []string     `json:"photos"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewListing is the listing wizard payload
type NewListing struct {
	Title        string       `json:"title" validate:"required,notblank,max=200"`
	Description  string       `json:"description" validate:"required,notblank"`
	Location     string       `json:"location" validate:"required,notblank"`
	Subcity      string       `json:"subcity" validate:"omitempty,subcity"`
	Price        int64        `json:"price" validate:"gt=0"`
	Bedrooms     int          `json:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms    int          `json:"bathrooms" validate:"gte=0,lte=50"`
	AreaSqm      float64      `json:"area_sqm" validate:"gte=0"`
	PropertyType PropertyType `json:"property_type" validate:"required,property_type"`
	Features     []string     `json:"features" validate:"dive,notblank"`
	Photos       []string     `json:"photos" validate:"max=20,dive,photo"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
}

// SearchFilters narrows a listing search; zero values mean "any"
type SearchFilters struct {
	Location     string       `json:"location,omitempty"`
	MinPrice     *int64       `json:"min_price,omitempty"`
	MaxPrice     *int64       `json:"max_price,omitempty"`
	Bedrooms     *int         `json:"bedrooms,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`
	Features     []string     `json:"features,omitempty"`
	Limit        int          `json:"limit,omitempty"`
	Offset       int          `json:"offset,omitempty"`
}

// IsEmpty returns true if no filter is set
func (f SearchFilters) IsEmpty() bool {
	return f.Location == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.Bedrooms == nil && f.PropertyType == "" && len(f.Features) == 0
}

// Default page sizes for listing queries
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Normalize clamps paging values
func (f SearchFilters) Normalize() SearchFilters {
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// SavedListing marks a listing a renter wants to come back to
type SavedListing struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
	Listing   *Listing  `json:"listing,omitempty"`
}

// SearchPreference is the last search a renter ran, kept to suggest listings later
type SearchPreference struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Location  string    `json:"location,omitempty"`
	MinPrice  *int64    `json:"min_price,omitempty"`
	MaxPrice  *int64    `json:"max_price,omitempty"`
	Bedrooms  *int      `json:"bedrooms,omitempty"`
	Features  []string  `json:"features"`
	CreatedAt time.Time `json:"created_at"`
}

// Filters converts the preference back into search filters
func (p *SearchPreference) Filters() SearchFilters {
	return SearchFilters{
		Location: p.Location,
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
		Bedrooms: p.Bedrooms,
		Features: append([]string(nil), p.Features...),
	}
}
