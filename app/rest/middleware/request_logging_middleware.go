package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request with the signed-in user, if any
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"uri", req.RequestURI,
				"ip", c.RealIP(),
				"status", res.Status,
				"size", res.Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			if userID, ok := c.Get(ContextUserID).(string); ok {
				attrs = append(attrs, "user_id", userID)
			}

			switch {
			case res.Status >= 500:
				logger.Error("request processed", attrs...)
			case res.Status >= 400:
				logger.Warn("request processed", attrs...)
			default:
				logger.Info("request processed", attrs...)
			}

			return nil
		}
	}
}
