package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// ProfileHandler reads and edits the signed-in user's profile
type ProfileHandler struct {
	session port.SessionManager
	logger  *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(session port.SessionManager, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		session: session,
		logger:  logger.With("component", "profile_handler"),
	}
}

// GetProfile returns the signed-in user's profile
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	snap := h.session.Snapshot()
	if !snap.IsAuthenticated() {
		return respondError(c, domain.ErrNotAuthenticated)
	}
	return c.JSON(http.StatusOK, snap.Profile)
}

// UpdateProfile applies a partial profile update
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body domain.ProfileUpdate true "Changed fields"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var update domain.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return badRequest(c, "request", "request body could not be parsed as JSON")
	}

	profile, err := h.session.UpdateProfile(c.Request().Context(), update)
	if err != nil {
		h.logger.Warn("profile update failed", "code", domain.CodeOf(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
