package middleware

import (
	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
)

// deny ends the request with the same body shape the handlers use
func deny(c echo.Context, status int, code domain.ErrorCode, message string) error {
	return c.JSON(status, map[string]interface{}{
		"error": message,
		"code":  code,
	})
}
