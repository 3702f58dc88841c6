package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// InboxHandler serves direct messages and notifications
type InboxHandler struct {
	listings port.ListingUsecase
	logger   *slog.Logger
}

// NewInboxHandler creates a new inbox handler
func NewInboxHandler(listings port.ListingUsecase, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{
		listings: listings,
		logger:   logger.With("component", "inbox_handler"),
	}
}

// Messages lists messages sent or received by the signed-in user
// @Summary Messages
// @Tags inbox
// @Produce json
// @Success 200 {array} domain.Message
// @Router /v1/messages [get]
func (h *InboxHandler) Messages(c echo.Context) error {
	messages, err := h.listings.Inbox(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage sends a direct message
// @Summary Send message
// @Tags inbox
// @Accept json
// @Produce json
// @Param body body domain.NewMessage true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Router /v1/messages [post]
func (h *InboxHandler) SendMessage(c echo.Context) error {
	var req domain.NewMessage
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request", "request body could not be parsed as JSON")
	}

	msg, err := h.listings.SendMessage(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// Notifications lists the signed-in user's notifications
// @Summary Notifications
// @Tags inbox
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} domain.Notification
// @Router /v1/notifications [get]
func (h *InboxHandler) Notifications(c echo.Context) error {
	unreadOnly := false
	if raw := c.QueryParam("unread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "unread", "must be a boolean")
		}
		unreadOnly = parsed
	}

	notifications, err := h.listings.Notifications(c.Request().Context(), unreadOnly)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead flags a notification as read
// @Summary Mark notification read
// @Tags inbox
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/notifications/{id}/read [post]
func (h *InboxHandler) MarkNotificationRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "id", "must be a UUID")
	}

	if err := h.listings.MarkNotificationRead(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
