package kratos

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-frontend/app/domain"
)

func TestClassifyErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		operation   string
		wantCode    domain.ErrorCode
		wantMessage string
	}{
		{
			name:      "invalid credentials",
			message:   "The provided credentials are invalid, check for spelling mistakes in your password or username, email address, or phone number.",
			operation: operationLogin,
			wantCode:  domain.ErrCodeInvalidCredentials,
		},
		{
			name:      "duplicate identifier",
			message:   "An account with the same identifier (email, phone, username, ...) exists already.",
			operation: operationRegistration,
			wantCode:  domain.ErrCodeEmailAlreadyRegistered,
		},
		{
			name:        "similar to identifier",
			message:     "The password can not be used because it is too similar to the identifier.",
			operation:   operationRegistration,
			wantCode:    domain.ErrCodeWeakPassword,
			wantMessage: "The password can not be used because it is too similar to the identifier.",
		},
		{
			name:        "too short",
			message:     "The password must be at least 8 characters long, but got 6.",
			operation:   operationRegistration,
			wantCode:    domain.ErrCodeWeakPassword,
			wantMessage: "The password must be at least 8 characters long, but got 6.",
		},
		{
			name:      "missing email",
			message:   "Property email is missing.",
			operation: operationRegistration,
			wantCode:  domain.ErrCodeValidation,
		},
		{
			name:      "login failed wording",
			message:   "login failed",
			operation: operationLogin,
			wantCode:  domain.ErrCodeInvalidCredentials,
		},
		{
			name:        "unknown text is preserved",
			message:     "Something odd happened upstream",
			operation:   operationRegistration,
			wantCode:    domain.ErrCodeUnknown,
			wantMessage: "Something odd happened upstream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyErrorMessage(tt.message, tt.operation)

			assert.Equal(t, tt.wantCode, err.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Message)
			}
		})
	}
}

func TestParseHTTPStatusError(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name      string
		status    int
		operation string
		wantCode  domain.ErrorCode
	}{
		{"login bad request", http.StatusBadRequest, operationLogin, domain.ErrCodeInvalidCredentials},
		{"registration bad request", http.StatusBadRequest, operationRegistration, domain.ErrCodeValidation},
		{"whoami unauthorized", http.StatusUnauthorized, operationWhoami, domain.ErrCodeNotAuthenticated},
		{"forbidden", http.StatusForbidden, operationLogout, domain.ErrCodeForbidden},
		{"registration conflict", http.StatusConflict, operationRegistration, domain.ErrCodeEmailAlreadyRegistered},
		{"flow expired", http.StatusGone, operationLogin, domain.ErrCodeUnknown},
		{"gateway", http.StatusBadGateway, operationLogin, domain.ErrCodeNetwork},
		{"unavailable", http.StatusServiceUnavailable, operationWhoami, domain.ErrCodeNetwork},
		{"teapot", http.StatusTeapot, operationLogin, domain.ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseHTTPStatusError(tt.status, tt.operation, cause)

			assert.Equal(t, tt.wantCode, err.Code)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestParseKratosErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]interface{}
		wantCode domain.ErrorCode
		wantNil  bool
	}{
		{
			name: "ui message",
			body: map[string]interface{}{
				"ui": map[string]interface{}{
					"messages": []interface{}{
						map[string]interface{}{"type": "error", "text": "The provided credentials are invalid"},
					},
				},
			},
			wantCode: domain.ErrCodeInvalidCredentials,
		},
		{
			name: "node message wins over unknown flow message",
			body: map[string]interface{}{
				"ui": map[string]interface{}{
					"messages": []interface{}{
						map[string]interface{}{"type": "error", "text": "Please review the form"},
					},
					"nodes": []interface{}{
						map[string]interface{}{
							"messages": []interface{}{
								map[string]interface{}{"type": "error", "text": "The password can not be used because it has been found in data breaches"},
							},
						},
					},
				},
			},
			wantCode: domain.ErrCodeWeakPassword,
		},
		{
			name: "info messages ignored",
			body: map[string]interface{}{
				"ui": map[string]interface{}{
					"messages": []interface{}{
						map[string]interface{}{"type": "info", "text": "Sign in with password"},
					},
				},
			},
			wantNil: true,
		},
		{
			name: "error object reason",
			body: map[string]interface{}{
				"error": map[string]interface{}{
					"reason":  "An account with the same identifier exists already",
					"message": "The request was malformed",
				},
			},
			wantCode: domain.ErrCodeEmailAlreadyRegistered,
		},
		{
			name:     "top level message",
			body:     map[string]interface{}{"message": "unexpected"},
			wantCode: domain.ErrCodeUnknown,
		},
		{
			name:    "nothing recognizable",
			body:    map[string]interface{}{"id": "x"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseKratosErrorResponse(tt.body, operationLogin)

			if tt.wantNil {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.wantCode, err.Code)
			}
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	assert.True(t, isNetworkError(&url.Error{Op: "Get", URL: "http://localhost", Err: errors.New("dial tcp: connection refused")}))
	assert.True(t, isNetworkError(errors.New("read: connection reset by peer")))
	assert.False(t, isNetworkError(errors.New("400 Bad Request")))
}
