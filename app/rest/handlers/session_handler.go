package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

const defaultKeepAlive = 15 * time.Second

// SessionHandler exposes the session snapshot and its change stream
type SessionHandler struct {
	session   port.SessionManager
	keepAlive time.Duration
	logger    *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session port.SessionManager, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session:   session,
		keepAlive: defaultKeepAlive,
		logger:    logger.With("component", "session_handler"),
	}
}

// GetSession returns the current snapshot
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /v1/session [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session.Snapshot())
}

// Events streams snapshots as server-sent events. The current snapshot is
// sent first; later ones follow as the session changes.
// @Summary Session change stream
// @Tags session
// @Produce text/event-stream
// @Router /v1/session/events [get]
func (h *SessionHandler) Events(c echo.Context) error {
	updates, unsubscribe := h.session.Subscribe()
	defer unsubscribe()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeSnapshotEvent(w, snap); err != nil {
				h.logger.Debug("session stream closed", "error", err)
				return nil
			}
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeSnapshotEvent(w *echo.Response, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data); err != nil {
		return err
	}
	w.Flush()
	return nil
}
