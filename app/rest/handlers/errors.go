package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rental-frontend/app/domain"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   domain.ErrorCode  `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusForCode maps a domain error code to an HTTP status
func StatusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeInvalidCredentials, domain.ErrCodeNotAuthenticated:
		return http.StatusUnauthorized
	case domain.ErrCodeForbidden:
		return http.StatusForbidden
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodeEmailAlreadyRegistered, domain.ErrCodeConflict:
		return http.StatusConflict
	case domain.ErrCodeWeakPassword, domain.ErrCodeUpdateRejected:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeNetwork, domain.ErrCodeProfileCreationFailed, domain.ErrCodeSignOut:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse with the status of its code
func respondError(c echo.Context, err error) error {
	code := domain.CodeOf(err)
	resp := ErrorResponse{
		Error: domain.MessageOf(err),
		Code:  code,
	}

	var (
		verr    *domain.ValidationError
		authErr *domain.AuthError
	)
	switch {
	case code == domain.ErrCodeValidation && errors.As(err, &verr):
		resp.Error = "validation failed"
		resp.Fields = verr.Fields
	case !errors.As(err, &authErr):
		// unclassified errors may carry driver details
		resp.Error = domain.ErrUnknown.Message
	}

	return c.JSON(StatusForCode(code), resp)
}

// badRequest reports a body or parameter that could not be decoded
func badRequest(c echo.Context, field, message string) error {
	return respondError(c, domain.NewValidationError(field, message))
}
