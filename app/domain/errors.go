package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode classifies failures surfaced by session and marketplace operations
type ErrorCode string

// Error codes
const (
	ErrCodeValidation             ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidCredentials     ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeEmailAlreadyRegistered ErrorCode = "EMAIL_ALREADY_REGISTERED"
	ErrCodeWeakPassword           ErrorCode = "WEAK_PASSWORD"
	ErrCodeProfileCreationFailed  ErrorCode = "PROFILE_CREATION_FAILED"
	ErrCodeNotAuthenticated       ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeUpdateRejected         ErrorCode = "UPDATE_REJECTED"
	ErrCodeNetwork                ErrorCode = "NETWORK_ERROR"
	ErrCodeSignOut                ErrorCode = "SIGN_OUT_ERROR"
	ErrCodeNotFound               ErrorCode = "NOT_FOUND"
	ErrCodeConflict               ErrorCode = "CONFLICT"
	ErrCodeForbidden              ErrorCode = "FORBIDDEN"
	ErrCodeUnknown                ErrorCode = "UNKNOWN"
)

// Sentinels match any AuthError carrying the same code:
//
//	errors.Is(err, domain.ErrInvalidCredentials)
var (
	ErrValidation             = &AuthError{Code: ErrCodeValidation, Message: "validation failed"}
	ErrInvalidCredentials     = &AuthError{Code: ErrCodeInvalidCredentials, Message: "invalid email or password"}
	ErrEmailAlreadyRegistered = &AuthError{Code: ErrCodeEmailAlreadyRegistered, Message: "email already registered"}
	ErrWeakPassword           = &AuthError{Code: ErrCodeWeakPassword, Message: "password is too weak"}
	ErrProfileCreationFailed  = &AuthError{Code: ErrCodeProfileCreationFailed, Message: "profile creation failed"}
	ErrNotAuthenticated       = &AuthError{Code: ErrCodeNotAuthenticated, Message: "not authenticated"}
	ErrUpdateRejected         = &AuthError{Code: ErrCodeUpdateRejected, Message: "profile update rejected"}
	ErrNetwork                = &AuthError{Code: ErrCodeNetwork, Message: "network error"}
	ErrSignOut                = &AuthError{Code: ErrCodeSignOut, Message: "sign out failed"}
	ErrNotFound               = &AuthError{Code: ErrCodeNotFound, Message: "not found"}
	ErrConflict               = &AuthError{Code: ErrCodeConflict, Message: "resource conflict"}
	ErrForbidden              = &AuthError{Code: ErrCodeForbidden, Message: "forbidden"}
	ErrUnknown                = &AuthError{Code: ErrCodeUnknown, Message: "unexpected error"}
)

// AuthError represents a classified failure with additional context
type AuthError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AuthError with the same code.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAuthError creates a new classified error
func NewAuthError(code ErrorCode, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError carries field-level details for malformed caller input.
// It is always classified as VALIDATION_ERROR.
type ValidationError struct {
	Fields map[string]string `json:"errors"`
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "validation failed: " + strings.Join(messages, ", ")
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Code == ErrCodeValidation
}

// CodeOf returns the code of the outermost classified error in err's chain.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var validationErr *ValidationError
	var authErr *AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Code
	case errors.As(err, &validationErr):
		return ErrCodeValidation
	default:
		return ErrCodeUnknown
	}
}

// MessageOf returns a message suitable for display next to a form.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return err.Error()
}
