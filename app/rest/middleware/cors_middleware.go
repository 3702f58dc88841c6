package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// corsMaxAge is how long browsers may cache a preflight answer, in seconds
const corsMaxAge = 600

// NewCORSMiddleware allows the given UI origins to call the local API.
// The API authenticates with the process-held Kratos token, never cookies,
// so credentials are not allowed cross-origin.
func NewCORSMiddleware(origins []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			echo.GET,
			echo.POST,
			echo.PATCH,
			echo.DELETE,
			echo.HEAD,
			echo.OPTIONS,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			"Last-Event-ID",
		},
		ExposeHeaders: []string{
			"Retry-After",
			echo.HeaderXRequestID,
		},
		MaxAge: corsMaxAge,
	})
}
