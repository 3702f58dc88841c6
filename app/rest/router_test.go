package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rental-frontend/app/domain"
	mock_port "rental-frontend/app/mocks"
	"rental-frontend/app/port"
	"rental-frontend/app/utils/logger"
)

type routerFixture struct {
	session  *mock_port.MockSessionManager
	listings *mock_port.MockListingUsecase
	health   *mock_port.MockHealthChecker
	handler  http.Handler
}

func newRouterFixture(t *testing.T, enableMetrics bool) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	f := &routerFixture{
		session:  mock_port.NewMockSessionManager(ctrl),
		listings: mock_port.NewMockListingUsecase(ctrl),
		health:   mock_port.NewMockHealthChecker(ctrl),
	}
	f.handler = NewRouter(ctx, RouterConfig{
		Logger:           logger.Discard(),
		Session:          f.session,
		Listings:         f.listings,
		HealthChecks:     map[string]port.HealthChecker{"database": f.health},
		Metrics:          http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("rental_up 1\n")) }),
		EnableMetrics:    enableMetrics,
		RateLimitRPS:     100,
		AuthRateLimitRPM: 10,
		AllowedOrigins:   []string{"http://localhost:5173"},
	})
	return f
}

func (f *routerFixture) do(method, target, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func signedInAs(role domain.Role) domain.Snapshot {
	id := uuid.New()
	return domain.AuthenticatedSnapshot(
		&domain.Identity{ID: id, Email: "user@example.com"},
		&domain.Profile{ID: id, Role: role, Name: "User", Phone: "+251911000000"},
	)
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t, true)
	f.health.EXPECT().HealthCheck(gomock.Any()).Return(nil)
	f.listings.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]*domain.Listing{}, nil)
	f.session.EXPECT().Snapshot().Return(domain.AnonymousSnapshot())

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/health", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/ready", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/listings", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/session", "").Code)

	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "rental_up"))
}

func TestRouter_Guards(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   domain.Snapshot
		method     string
		target     string
		origin     string
		setup      func(*routerFixture)
		wantStatus int
	}{
		{
			name:       "profile needs a session",
			snapshot:   domain.AnonymousSnapshot(),
			method:     http.MethodGet,
			target:     "/v1/profile",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "renters cannot see the agent dashboard",
			snapshot:   signedInAs(domain.RoleRenter),
			method:     http.MethodGet,
			target:     "/v1/listings/mine",
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "agents reach their dashboard",
			snapshot: signedInAs(domain.RoleAgent),
			method:   http.MethodGet,
			target:   "/v1/listings/mine",
			setup: func(f *routerFixture) {
				f.listings.EXPECT().MyListings(gomock.Any()).Return([]*domain.Listing{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "agents cannot save listings",
			snapshot:   signedInAs(domain.RoleAgent),
			method:     http.MethodGet,
			target:     "/v1/saved",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "foreign origin cannot sign out",
			method:     http.MethodPost,
			target:     "/v1/auth/signout",
			origin:     "https://evil.example",
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "local origin can sign out",
			method: http.MethodPost,
			target: "/v1/auth/signout",
			origin: "http://localhost:5173",
			setup: func(f *routerFixture) {
				f.session.EXPECT().SignOut(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, false)
			if tt.snapshot.Status != "" {
				f.session.EXPECT().Snapshot().Return(tt.snapshot)
			}
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(tt.method, tt.target, tt.origin)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	f := newRouterFixture(t, false)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/metrics", "").Code)
}
