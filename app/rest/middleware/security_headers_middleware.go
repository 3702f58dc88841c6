package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	CSPConnectSrc  []string
	HSTSMaxAge     int // 0 disables HSTS
	SensitivePaths []string
}

// DefaultSecurityConfig returns the header policy for a JSON API
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		CSPConnectSrc: []string{"'self'"},
		SensitivePaths: []string{
			"/v1/auth/",
			"/v1/session",
			"/v1/profile",
			"/v1/messages",
			"/v1/notifications",
		},
	}
}

func SecurityHeaders(config SecurityConfig) echo.MiddlewareFunc {
	csp := "default-src 'none'; " +
		"connect-src " + strings.Join(config.CSPConnectSrc, " ") + "; " +
		"frame-ancestors 'none'; " +
		"base-uri 'none'; " +
		"form-action 'none'"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			headers := c.Response().Header()

			if config.HSTSMaxAge > 0 {
				headers.Set("Strict-Transport-Security", fmt.Sprintf("max-age=%d; includeSubDomains", config.HSTSMaxAge))
			}
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("X-Frame-Options", "DENY")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			headers.Set("Content-Security-Policy", csp)
			headers.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=(), usb=()")

			path := c.Request().URL.Path
			for _, sensitive := range config.SensitivePaths {
				if strings.HasPrefix(path, sensitive) {
					headers.Set("Cache-Control", "no-cache, no-store, must-revalidate")
					headers.Set("Pragma", "no-cache")
					break
				}
			}

			return next(c)
		}
	}
}
