package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental-frontend/app/domain"
	mock_port "rental-frontend/app/mocks"
	"rental-frontend/app/utils/logger"
)

func TestSessionHandler_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock_port.NewMockSessionManager(ctrl)
	session.EXPECT().Snapshot().Return(domain.LoadingSnapshot())
	handler := NewSessionHandler(session, logger.Discard())

	c, rec := newContext(http.MethodGet, "/v1/session", "")
	require.NoError(t, handler.GetSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, domain.StatusLoading, snap.Status)
	assert.Nil(t, snap.Profile)
}

func TestSessionHandler_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock_port.NewMockSessionManager(ctrl)

	ch := make(chan domain.Snapshot, 2)
	ch <- domain.AnonymousSnapshot()
	ch <- signedIn(domain.RoleRenter)
	close(ch)
	var updates <-chan domain.Snapshot = ch

	unsubscribed := false
	session.EXPECT().Subscribe().Return(updates, func() { unsubscribed = true })
	handler := NewSessionHandler(session, logger.Discard())

	c, rec := newContext(http.MethodGet, "/v1/session/events", "")
	require.NoError(t, handler.Events(c))

	assert.True(t, unsubscribed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, events, 2)
	assert.True(t, strings.HasPrefix(events[0], "event: snapshot\ndata: "))
	assert.Contains(t, events[0], `"status":"anonymous"`)
	assert.Contains(t, events[1], `"status":"authenticated"`)
}

func TestProfileHandler(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		session := mock_port.NewMockSessionManager(ctrl)
		session.EXPECT().Snapshot().Return(domain.AnonymousSnapshot())
		handler := NewProfileHandler(session, logger.Discard())

		c, rec := newContext(http.MethodGet, "/v1/profile", "")
		require.NoError(t, handler.GetProfile(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domain.ErrCodeNotAuthenticated, decodeError(t, rec).Code)
	})

	t.Run("signed in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		session := mock_port.NewMockSessionManager(ctrl)
		snap := signedIn(domain.RoleAgent)
		session.EXPECT().Snapshot().Return(snap)
		handler := NewProfileHandler(session, logger.Discard())

		c, rec := newContext(http.MethodGet, "/v1/profile", "")
		require.NoError(t, handler.GetProfile(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var profile domain.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, snap.Profile.ID, profile.ID)
		assert.Equal(t, domain.RoleAgent, profile.Role)
	})

	t.Run("update", func(t *testing.T) {
		name := "Hana"
		tests := []struct {
			name       string
			result     error
			wantStatus int
		}{
			{name: "applied", wantStatus: http.StatusOK},
			{name: "rejected", result: domain.ErrUpdateRejected, wantStatus: http.StatusUnprocessableEntity},
			{name: "signed out", result: domain.ErrNotAuthenticated, wantStatus: http.StatusUnauthorized},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				session := mock_port.NewMockSessionManager(ctrl)
				var updated *domain.Profile
				if tt.result == nil {
					updated = signedIn(domain.RoleRenter).Profile
					updated.Name = name
				}
				session.EXPECT().UpdateProfile(gomock.Any(), domain.ProfileUpdate{Name: &name}).Return(updated, tt.result)
				handler := NewProfileHandler(session, logger.Discard())

				c, rec := newContext(http.MethodPatch, "/v1/profile", `{"name":"Hana"}`)
				require.NoError(t, handler.UpdateProfile(c))

				assert.Equal(t, tt.wantStatus, rec.Code)
			})
		}
	})
}
