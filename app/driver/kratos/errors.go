package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"rental-frontend/app/domain"
)

const (
	operationLogin        = "login"
	operationRegistration = "registration"
	operationLogout       = "logout"
	operationWhoami       = "whoami"
)

// transformKratosError maps a Kratos SDK failure onto a domain AuthError
func (p *IdentityProvider) transformKratosError(err error, httpResp *http.Response, operation string) *domain.AuthError {
	p.logger.Debug("transforming kratos error",
		"error", err,
		"error_type", fmt.Sprintf("%T", err),
		"operation", operation,
		"http_status", getHTTPStatus(httpResp))

	var kratosErr *kratosclient.GenericOpenAPIError
	if errors.As(err, &kratosErr) {
		authErr := parseKratosGenericError(kratosErr, operation)
		serverFailure := httpResp != nil && httpResp.StatusCode >= http.StatusInternalServerError
		if authErr != nil && !(serverFailure && authErr.Code == domain.ErrCodeUnknown) {
			authErr.Cause = err
			return authErr
		}
	}

	if httpResp == nil && isNetworkError(err) {
		return domain.NewAuthError(domain.ErrCodeNetwork, "Unable to reach the authentication service", err)
	}

	if httpResp != nil {
		return parseHTTPStatusError(httpResp.StatusCode, operation, err)
	}

	return domain.NewAuthError(domain.ErrCodeUnknown, err.Error(), err)
}

// parseKratosGenericError returns nil when the body carries nothing recognizable
func parseKratosGenericError(kratosErr *kratosclient.GenericOpenAPIError, operation string) *domain.AuthError {
	body := kratosErr.Body()
	if len(body) == 0 {
		return nil
	}

	var errorResp map[string]interface{}
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil {
		return parseKratosErrorResponse(errorResp, operation)
	}

	return classifyErrorMessage(strings.TrimSpace(string(body)), operation)
}

func parseKratosErrorResponse(errorResp map[string]interface{}, operation string) *domain.AuthError {
	// Flow responses carry their errors in the UI container
	if ui, ok := errorResp["ui"].(map[string]interface{}); ok {
		if authErr := parseUIErrors(ui, operation); authErr != nil {
			return authErr
		}
	}

	if errorObj, ok := errorResp["error"].(map[string]interface{}); ok {
		for _, key := range []string{"reason", "message"} {
			if text, ok := errorObj[key].(string); ok && text != "" {
				if authErr := classifyErrorMessage(text, operation); authErr.Code != domain.ErrCodeUnknown {
					return authErr
				}
			}
		}
		if text, ok := errorObj["message"].(string); ok && text != "" {
			return classifyErrorMessage(text, operation)
		}
	}

	for _, key := range []string{"reason", "message"} {
		if text, ok := errorResp[key].(string); ok && text != "" {
			return classifyErrorMessage(text, operation)
		}
	}

	return nil
}

// parseUIErrors returns the first classifiable message, falling back to the first message seen
func parseUIErrors(ui map[string]interface{}, operation string) *domain.AuthError {
	texts := messageTexts(ui["messages"])

	if nodes, ok := ui["nodes"].([]interface{}); ok {
		for _, node := range nodes {
			if nodeMap, ok := node.(map[string]interface{}); ok {
				texts = append(texts, messageTexts(nodeMap["messages"])...)
			}
		}
	}

	var fallback *domain.AuthError
	for _, text := range texts {
		authErr := classifyErrorMessage(text, operation)
		if authErr.Code != domain.ErrCodeUnknown {
			return authErr
		}
		if fallback == nil {
			fallback = authErr
		}
	}

	return fallback
}

func messageTexts(raw interface{}) []string {
	messages, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var texts []string
	for _, msg := range messages {
		msgMap, ok := msg.(map[string]interface{})
		if !ok {
			continue
		}
		// Informational messages like "Please choose a password" are not failures
		if msgType, _ := msgMap["type"].(string); msgType == "info" {
			continue
		}
		if text, ok := msgMap["text"].(string); ok && text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// parseHTTPStatusError maps bare HTTP statuses when the body said nothing useful
func parseHTTPStatusError(statusCode int, operation string, originalErr error) *domain.AuthError {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnauthorized:
		if operation == operationLogin {
			return domain.NewAuthError(domain.ErrCodeInvalidCredentials, "Invalid email or password", originalErr)
		}
		if statusCode == http.StatusUnauthorized {
			return domain.NewAuthError(domain.ErrCodeNotAuthenticated, "Session is no longer valid", originalErr)
		}
		return domain.NewAuthError(domain.ErrCodeValidation, "Invalid request data", originalErr)
	case http.StatusForbidden:
		return domain.NewAuthError(domain.ErrCodeForbidden, "Access denied", originalErr)
	case http.StatusNotFound:
		return domain.NewAuthError(domain.ErrCodeNotFound, "Resource not found", originalErr)
	case http.StatusConflict:
		if operation == operationRegistration {
			return domain.NewAuthError(domain.ErrCodeEmailAlreadyRegistered, "An account with this email already exists", originalErr)
		}
		return domain.NewAuthError(domain.ErrCodeConflict, "Request conflicts with current state", originalErr)
	case http.StatusGone:
		return domain.NewAuthError(domain.ErrCodeUnknown, "The authentication flow expired, please try again", originalErr)
	case http.StatusUnprocessableEntity:
		return domain.NewAuthError(domain.ErrCodeValidation, "Validation failed", originalErr)
	case http.StatusTooManyRequests:
		return domain.NewAuthError(domain.ErrCodeUnknown, "Too many attempts, please wait and try again", originalErr)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return domain.NewAuthError(domain.ErrCodeNetwork, "Authentication service is temporarily unavailable", originalErr)
	default:
		return domain.NewAuthError(domain.ErrCodeUnknown, fmt.Sprintf("Kratos %s failed with status %d", operation, statusCode), originalErr)
	}
}

// classifyErrorMessage classifies Kratos message texts into domain error codes
func classifyErrorMessage(message, operation string) *domain.AuthError {
	messageLower := strings.ToLower(message)

	switch {
	case containsAny(messageLower, []string{"credentials are invalid", "invalid credentials", "wrong password", "check for spelling mistakes in your password or username"}):
		return domain.NewAuthError(domain.ErrCodeInvalidCredentials, "Invalid email or password", nil)

	case containsAny(messageLower, []string{"exists already", "already exists", "already registered", "same identifier"}):
		return domain.NewAuthError(domain.ErrCodeEmailAlreadyRegistered, "An account with this email already exists", nil)

	case containsAny(messageLower, []string{
		"password can not be used", "password cannot be used", "too similar",
		"data breach", "password length must be at least", "password must be at least",
		"password policy", "password too weak",
	}):
		return domain.NewAuthError(domain.ErrCodeWeakPassword, message, nil)

	case containsAny(messageLower, []string{"property email is missing", "property password is missing", "is not valid \"email\"", "invalid email", "missing properties"}):
		return domain.NewAuthError(domain.ErrCodeValidation, message, nil)

	case containsAny(messageLower, []string{"connection refused", "network error", "service unavailable", "is unavailable", "timeout"}):
		return domain.NewAuthError(domain.ErrCodeNetwork, "Authentication service is temporarily unavailable", nil)
	}

	if operation == operationLogin && containsAny(messageLower, []string{"authentication failed", "login failed"}) {
		return domain.NewAuthError(domain.ErrCodeInvalidCredentials, "Invalid email or password", nil)
	}

	return domain.NewAuthError(domain.ErrCodeUnknown, message, nil)
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	return containsAny(strings.ToLower(err.Error()), []string{"connection refused", "no such host", "connection reset", "i/o timeout"})
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
