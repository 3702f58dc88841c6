package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// Context keys set by RequireAuth
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// SessionGuard gates routes on the local session state
type SessionGuard struct {
	session port.SessionManager
	logger  *slog.Logger
}

// NewSessionGuard creates a new session guard
func NewSessionGuard(session port.SessionManager, logger *slog.Logger) *SessionGuard {
	return &SessionGuard{
		session: session,
		logger:  logger.With("component", "session_guard"),
	}
}

// RequireAuth rejects requests while nobody is signed in
func (g *SessionGuard) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := g.session.Snapshot()
			if !snap.IsAuthenticated() {
				if snap.Status == domain.StatusLoading {
					g.logger.Debug("request rejected while session is loading", "path", c.Path())
				}
				return deny(c, http.StatusUnauthorized, domain.ErrCodeNotAuthenticated, "authentication required")
			}

			c.Set(ContextUserID, snap.Profile.ID.String())
			c.Set(ContextUserRole, string(snap.Profile.Role))

			return next(c)
		}
	}
}

// RequireRole rejects signed-in users without the given role. It must run
// after RequireAuth.
func (g *SessionGuard) RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get(ContextUserRole).(string)
			if !ok {
				return deny(c, http.StatusUnauthorized, domain.ErrCodeNotAuthenticated, "authentication required")
			}

			if domain.Role(userRole) != role {
				g.logger.Info("role check failed", "required", role, "actual", userRole, "path", c.Path())
				return deny(c, http.StatusForbidden, domain.ErrCodeForbidden, "only "+string(role)+"s can do this")
			}

			return next(c)
		}
	}
}
