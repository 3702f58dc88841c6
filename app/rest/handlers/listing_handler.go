package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
	"rental-frontend/app/search"
)

// ListingHandler serves the marketplace: search, the agent dashboard and saved listings
type ListingHandler struct {
	listings port.ListingUsecase
	logger   *slog.Logger
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listings port.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		logger:   logger.With("component", "listing_handler"),
	}
}

// NaturalSearchResponse carries the filters understood from the text with the results
type NaturalSearchResponse struct {
	Filters  domain.SearchFilters `json:"filters"`
	Listings []*domain.Listing    `json:"listings"`
}

// SavedResponse reports whether a listing is saved after a toggle
type SavedResponse struct {
	ListingID uuid.UUID `json:"listing_id"`
	Saved     bool      `json:"saved"`
}

// Search lists listings matching query filters
// @Summary Search listings
// @Tags listings
// @Produce json
// @Param location query string false "Location or sub-city"
// @Param minPrice query int false "Minimum monthly price"
// @Param maxPrice query int false "Maximum monthly price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param propertyType query string false "Property type"
// @Param features query string false "Comma separated features"
// @Success 200 {array} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Router /v1/listings [get]
func (h *ListingHandler) Search(c echo.Context) error {
	filters, err := search.FiltersFromQuery(c.QueryParams())
	if err != nil {
		return respondError(c, err)
	}

	listings, err := h.listings.Search(c.Request().Context(), filters)
	if err != nil {
		h.logger.Error("listing search failed", "error", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, listings)
}

// NaturalSearch runs a free-text search such as "2-bedroom in Bole under 20K ETB"
// @Summary Natural language search
// @Tags listings
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} NaturalSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/listings/search [get]
func (h *ListingHandler) NaturalSearch(c echo.Context) error {
	filters, listings, err := h.listings.NaturalSearch(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, NaturalSearchResponse{Filters: filters, Listings: listings})
}

// Create publishes a listing for the signed-in agent
// @Summary Create listing
// @Tags listings
// @Accept json
// @Produce json
// @Param body body domain.NewListing true "Listing"
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req domain.NewListing
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request", "request body could not be parsed as JSON")
	}

	listing, err := h.listings.CreateListing(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.Info("listing published", "listing_id", listing.ID)
	return c.JSON(http.StatusCreated, listing)
}

// Mine lists the signed-in agent's listings
// @Summary Agent listings
// @Tags listings
// @Produce json
// @Success 200 {array} domain.Listing
// @Router /v1/listings/mine [get]
func (h *ListingHandler) Mine(c echo.Context) error {
	listings, err := h.listings.MyListings(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Delete removes one of the signed-in agent's listings
// @Summary Delete listing
// @Tags listings
// @Param id path string true "Listing ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "must be a UUID")
	}

	if err := h.listings.DeleteListing(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Saved lists the signed-in renter's saved listings
// @Summary Saved listings
// @Tags saved
// @Produce json
// @Success 200 {array} domain.SavedListing
// @Router /v1/saved [get]
func (h *ListingHandler) Saved(c echo.Context) error {
	saved, err := h.listings.SavedListings(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

// ToggleSaved saves or unsaves a listing for the signed-in renter
// @Summary Toggle saved listing
// @Tags saved
// @Param id path string true "Listing ID"
// @Success 200 {object} SavedResponse
// @Router /v1/saved/{id} [post]
func (h *ListingHandler) ToggleSaved(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "must be a UUID")
	}

	saved, err := h.listings.ToggleSaved(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, SavedResponse{ListingID: id, Saved: saved})
}

// SearchPreference returns the signed-in user's remembered search
// @Summary Search preference
// @Tags listings
// @Produce json
// @Success 200 {object} domain.SearchPreference
// @Failure 404 {object} ErrorResponse
// @Router /v1/search/preferences [get]
func (h *ListingHandler) SearchPreference(c echo.Context) error {
	pref, err := h.listings.SearchPreference(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pref)
}
