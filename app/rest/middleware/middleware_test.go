package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental-frontend/app/domain"
	mock_port "rental-frontend/app/mocks"
	"rental-frontend/app/utils/logger"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "success")
}

func serve(mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = mw(okHandler)(c)
	return rec
}

func authenticated(role domain.Role) domain.Snapshot {
	id := uuid.New()
	return domain.AuthenticatedSnapshot(
		&domain.Identity{ID: id, Email: "user@example.com"},
		&domain.Profile{ID: id, Role: role, Name: "User", Phone: "+251911000000"},
	)
}

func TestSessionGuard(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   domain.Snapshot
		role       domain.Role
		wantStatus int
	}{
		{name: "loading", snapshot: domain.LoadingSnapshot(), wantStatus: http.StatusUnauthorized},
		{name: "anonymous", snapshot: domain.AnonymousSnapshot(), wantStatus: http.StatusUnauthorized},
		{name: "signed in", snapshot: authenticated(domain.RoleRenter), wantStatus: http.StatusOK},
		{name: "agent route as agent", snapshot: authenticated(domain.RoleAgent), role: domain.RoleAgent, wantStatus: http.StatusOK},
		{name: "agent route as renter", snapshot: authenticated(domain.RoleRenter), role: domain.RoleAgent, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_port.NewMockSessionManager(ctrl)
			session.EXPECT().Snapshot().Return(tt.snapshot)
			guard := NewSessionGuard(session, logger.Discard())

			handler := okHandler
			if tt.role != "" {
				handler = guard.RequireRole(tt.role)(handler)
			}
			handler = guard.RequireAuth()(handler)

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/v1/listings/mine", nil), rec)
			require.NoError(t, handler(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.snapshot.Profile.ID.String(), c.Get(ContextUserID))
			}
		})
	}

	t.Run("role without auth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := NewSessionGuard(mock_port.NewMockSessionManager(ctrl), logger.Discard())

		rec := serve(guard.RequireRole(domain.RoleAgent), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	config := DefaultRateLimitConfig(1, 2)
	config.Burst = 2
	limiter := NewRateLimiter(ctx, config)
	mw := limiter.RateLimit()

	send := func(path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("X-Real-IP", ip)
		return serve(mw, req)
	}

	t.Run("api burst then limited", func(t *testing.T) {
		passed := 0
		var last *httptest.ResponseRecorder
		for i := 0; i < 5; i++ {
			last = send("/v1/listings", "192.168.1.100")
			if last.Code == http.StatusOK {
				passed++
			}
		}

		assert.Equal(t, 2, passed)
		assert.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.NotEmpty(t, last.Header().Get("Retry-After"))
	})

	t.Run("sign in has its own budget", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send("/v1/auth/signin", "192.168.1.100").Code)
		assert.Equal(t, http.StatusOK, send("/v1/auth/signin", "192.168.1.100").Code)
		rec := send("/v1/auth/signin", "192.168.1.100")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	})

	t.Run("other ip unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send("/v1/listings", "10.0.0.7").Code)
	})
}

func TestRateLimiter_CleanupStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	config := DefaultRateLimitConfig(5, 10)
	config.CleanupInterval = time.Millisecond
	limiter := NewRateLimiter(ctx, config)

	limiter.allow("api:1.2.3.4", 5, 5)
	limiter.mutex.Lock()
	limiter.visitors["api:1.2.3.4"].lastSeen = time.Now().Add(-time.Hour)
	limiter.mutex.Unlock()

	assert.Eventually(t, func() bool {
		limiter.mutex.Lock()
		defer limiter.mutex.Unlock()
		return len(limiter.visitors) == 0
	}, time.Second, 5*time.Millisecond)
	cancel()
}

func TestOriginGuard(t *testing.T) {
	guard := NewOriginGuard(OriginGuardConfig{
		AllowedOrigins: []string{"http://localhost:5173", "HTTP://127.0.0.1:5173/"},
	}, logger.Discard())

	tests := []struct {
		name       string
		method     string
		origin     string
		fetchSite  string
		wantStatus int
	}{
		{name: "safe method from anywhere", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK},
		{name: "allowed origin", method: http.MethodPost, origin: "http://localhost:5173", wantStatus: http.StatusOK},
		{name: "allowed origin normalized", method: http.MethodDelete, origin: "http://127.0.0.1:5173", wantStatus: http.StatusOK},
		{name: "no origin", method: http.MethodPost, wantStatus: http.StatusOK},
		{name: "unknown origin", method: http.MethodPost, origin: "https://evil.example", wantStatus: http.StatusForbidden},
		{name: "cross-site fetch", method: http.MethodPatch, fetchSite: "cross-site", wantStatus: http.StatusForbidden},
		{name: "same-site fetch", method: http.MethodPost, origin: "http://localhost:5173", fetchSite: "same-site", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/auth/signout", nil)
			if tt.origin != "" {
				req.Header.Set(echo.HeaderOrigin, tt.origin)
			}
			if tt.fetchSite != "" {
				req.Header.Set("Sec-Fetch-Site", tt.fetchSite)
			}

			rec := serve(guard.Middleware(), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	mw := SecurityHeaders(DefaultSecurityConfig())

	rec := serve(mw, httptest.NewRequest(http.MethodGet, "/v1/session", nil))

	headers := rec.Header()
	assert.Contains(t, headers.Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", headers.Get("Cache-Control"))
	assert.Empty(t, headers.Get("Strict-Transport-Security"))

	rec = serve(mw, httptest.NewRequest(http.MethodGet, "/v1/listings", nil))
	assert.Empty(t, rec.Header().Get("Cache-Control"))

	config := DefaultSecurityConfig()
	config.HSTSMaxAge = 3600
	rec = serve(SecurityHeaders(config), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "max-age=3600; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
}

func TestCORS(t *testing.T) {
	mw := NewCORSMiddleware([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/v1/listings", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	rec := serve(mw, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(http.MethodOptions, "/v1/session/events", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec = serve(mw, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "Last-Event-ID")
	assert.Equal(t, "600", rec.Header().Get(echo.HeaderAccessControlMaxAge))

	req = httptest.NewRequest(http.MethodGet, "/v1/listings", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec = serve(mw, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
