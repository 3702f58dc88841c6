package kratos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rental-frontend/app/utils/logger"
)

const (
	testIdentityID = "5f0c3a6e-3c51-4d8b-9e0b-6f6d1f1f7a10"
	otherIdentity  = "9b2d7c44-8f1e-4f4e-a6b0-0c8e2d9f3b21"
	testPassword   = "correct-horse"
)

// fakeKratos emulates the subset of the Kratos public API used by the provider
type fakeKratos struct {
	t *testing.T

	mu sync.Mutex
	// token -> identity id
	sessions       map[string]string
	sessionExpiry  map[string]time.Time
	users          map[string]string
	requireVerify  bool
	logoutStatus   int
	whoamiStatus   int
	registerTraits map[string]interface{}
	loginAttempts  int
	logoutTokens   []string
	nextToken      int
	server         *httptest.Server
}

func newFakeKratos(t *testing.T) *fakeKratos {
	t.Helper()

	f := &fakeKratos{
		t:             t,
		sessions:      make(map[string]string),
		sessionExpiry: make(map[string]time.Time),
		users:         map[string]string{"renter@example.com": testIdentityID},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /self-service/login/api", f.handleCreateFlow("login"))
	mux.HandleFunc("GET /self-service/registration/api", f.handleCreateFlow("registration"))
	mux.HandleFunc("POST /self-service/login", f.handleLogin)
	mux.HandleFunc("POST /self-service/registration", f.handleRegistration)
	mux.HandleFunc("GET /sessions/whoami", f.handleWhoami)
	mux.HandleFunc("DELETE /self-service/logout/api", f.handleLogout)
	mux.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"version": "v1.3.0"})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeKratos) provider(tokens TokenStore) *IdentityProvider {
	client := newClient(f.server.URL, f.server.Client(), logger.Discard())
	return NewIdentityProvider(client, tokens, logger.Discard())
}

// issue creates a session for identityID and returns its token
func (f *fakeKratos) issue(identityID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextToken++
	token := "ory_st_" + string(rune('a'+f.nextToken))
	f.sessions[token] = identityID
	f.sessionExpiry[token] = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return token
}

func (f *fakeKratos) revoke(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
}

func (f *fakeKratos) extend(token string, expiresAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessionExpiry[token] = expiresAt
}

func (f *fakeKratos) lastTraits() map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registerTraits
}

func (f *fakeKratos) revokedTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.logoutTokens...)
}

func (f *fakeKratos) setStatus(whoami, logout int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.whoamiStatus = whoami
	f.logoutStatus = logout
}

func (f *fakeKratos) handleCreateFlow(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, flowJSON(f.server.URL, kind, "flow-"+kind, nil))
	}
}

func (f *fakeKratos) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))

	f.mu.Lock()
	f.loginAttempts++
	identityID, known := f.users[body["identifier"].(string)]
	f.mu.Unlock()

	if r.URL.Query().Get("flow") != "flow-login" || body["method"] != "password" {
		writeJSON(w, http.StatusGone, map[string]interface{}{"error": map[string]interface{}{"code": 410, "message": "flow not found"}})
		return
	}

	if !known || body["password"] != testPassword {
		writeJSON(w, http.StatusBadRequest, flowJSON(f.server.URL, "login", "flow-login", []interface{}{
			map[string]interface{}{
				"id":   4000006,
				"type": "error",
				"text": "The provided credentials are invalid, check for spelling mistakes in your password or username, email address, or phone number.",
			},
		}))
		return
	}

	token := f.issue(identityID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":       f.sessionJSON(token),
		"session_token": token,
	})
}

func (f *fakeKratos) handleRegistration(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))

	traits, _ := body["traits"].(map[string]interface{})
	email, _ := traits["email"].(string)

	f.mu.Lock()
	f.registerTraits = traits
	_, exists := f.users[email]
	f.mu.Unlock()

	switch {
	case exists:
		writeJSON(w, http.StatusBadRequest, flowWithNodeMessage(f.server.URL, "registration", "traits.email",
			"An account with the same identifier (email, phone, username, ...) exists already."))
		return
	case body["password"] == "password":
		writeJSON(w, http.StatusBadRequest, flowWithNodeMessage(f.server.URL, "registration", "password",
			"The password can not be used because it has been found in data breaches and must no longer be used."))
		return
	}

	f.mu.Lock()
	f.users[email] = otherIdentity
	verify := f.requireVerify
	f.mu.Unlock()

	identity := identityJSON(f.server.URL, otherIdentity, email)
	if verify {
		writeJSON(w, http.StatusOK, map[string]interface{}{"identity": identity})
		return
	}

	token := f.issue(otherIdentity)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"identity":      identity,
		"session":       f.sessionJSON(token),
		"session_token": token,
	})
}

func (f *fakeKratos) handleWhoami(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status := f.whoamiStatus
	_, ok := f.sessions[r.Header.Get("X-Session-Token")]
	f.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]interface{}{"error": map[string]interface{}{"code": status, "message": "The service is unavailable"}})
		return
	}
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error": map[string]interface{}{
				"code":    401,
				"status":  "Unauthorized",
				"reason":  "No valid session credentials found in the request.",
				"message": "The request could not be authorized",
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, f.sessionJSON(r.Header.Get("X-Session-Token")))
}

func (f *fakeKratos) handleLogout(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
	token, _ := body["session_token"].(string)

	f.mu.Lock()
	f.logoutTokens = append(f.logoutTokens, token)
	status := f.logoutStatus
	f.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]interface{}{"error": map[string]interface{}{"code": status, "message": "The service is unavailable"}})
		return
	}

	f.revoke(token)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeKratos) sessionJSON(token string) map[string]interface{} {
	f.mu.Lock()
	identityID := f.sessions[token]
	expiresAt := f.sessionExpiry[token]
	f.mu.Unlock()

	email := "renter@example.com"
	if identityID == otherIdentity {
		email = "agent@example.com"
	}

	return map[string]interface{}{
		"id":         "session-" + token,
		"active":     true,
		"expires_at": expiresAt.Format(time.RFC3339),
		"identity":   identityJSON(f.server.URL, identityID, email),
	}
}

func identityJSON(baseURL, id, email string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"schema_id":  "default",
		"schema_url": baseURL + "/schemas/default",
		"traits":     map[string]interface{}{"email": email},
	}
}

func flowJSON(baseURL, kind, id string, messages []interface{}) map[string]interface{} {
	now := time.Now().UTC()
	ui := map[string]interface{}{
		"action": baseURL + "/self-service/" + kind + "?flow=" + id,
		"method": "POST",
		"nodes":  []interface{}{},
	}
	if messages != nil {
		ui["messages"] = messages
	}
	return map[string]interface{}{
		"id":          id,
		"type":        "api",
		"expires_at":  now.Add(time.Hour).Format(time.RFC3339),
		"issued_at":   now.Format(time.RFC3339),
		"request_url": baseURL + "/self-service/" + kind + "/api",
		"state":       "choose_method",
		"ui":          ui,
	}
}

func flowWithNodeMessage(baseURL, kind, field, text string) map[string]interface{} {
	flow := flowJSON(baseURL, kind, "flow-"+kind, nil)
	flow["ui"].(map[string]interface{})["nodes"] = []interface{}{
		map[string]interface{}{
			"type":       "input",
			"group":      "password",
			"attributes": map[string]interface{}{"name": field, "type": "text", "node_type": "input", "disabled": false},
			"messages":   []interface{}{map[string]interface{}{"id": 4000007, "type": "error", "text": text}},
			"meta":       map[string]interface{}{},
		},
	}
	return flow
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
