package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// AuthHandler handles sign-in, sign-up and sign-out
type AuthHandler struct {
	session port.SessionManager
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(session port.SessionManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		session: session,
		logger:  logger.With("component", "auth_handler"),
	}
}

// SignIn authenticates with email and password
// @Summary Sign in
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body domain.SignInRequest true "Credentials"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req domain.SignInRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request", "request body could not be parsed as JSON")
	}

	snap, err := h.session.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("sign in failed", "code", domain.CodeOf(err), "ip", c.RealIP())
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, snap)
}

// SignUp creates an account and its profile, then signs in
// @Summary Sign up
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body domain.SignUpRequest true "Account details"
// @Success 201 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req domain.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request", "request body could not be parsed as JSON")
	}

	snap, err := h.session.SignUp(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("sign up failed", "code", domain.CodeOf(err), "ip", c.RealIP())
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, snap)
}

// SignOut ends the current session
// @Summary Sign out
// @Tags authentication
// @Success 204
// @Failure 502 {object} ErrorResponse
// @Router /v1/auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.session.SignOut(c.Request().Context()); err != nil {
		h.logger.Error("sign out failed", "error", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
