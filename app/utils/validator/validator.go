package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"rental-frontend/app/domain"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)
	dataURIPattern = regexp.MustCompile(`^data:image/(png|jpe?g|gif|webp);base64,[A-Za-z0-9+/]+={0,2}$`)
)

// Validator wraps the go-playground validator with marketplace rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns a *domain.ValidationError on failure
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return NewValidationError(errs)
	}
	return &domain.ValidationError{Fields: map[string]string{"request": err.Error()}}
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// NewValidationError converts validator.ValidationErrors into user-facing messages
func NewValidationError(errs validator.ValidationErrors) *domain.ValidationError {
	fields := make(map[string]string)

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required", "notblank":
			fields[field] = fmt.Sprintf("%s is required", field)
		case "email":
			fields[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			fields[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			fields[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "gt":
			fields[field] = fmt.Sprintf("%s must be greater than %s", field, err.Param())
		case "gte":
			fields[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
		case "lte":
			fields[field] = fmt.Sprintf("%s must be less than or equal to %s", field, err.Param())
		case "phone":
			fields[field] = "phone must be a valid phone number, e.g. +251911000000"
		case "user_role":
			fields[field] = "role must be either renter or agent"
		case "property_type":
			fields[field] = "property_type is not a supported property type"
		case "subcity":
			fields[field] = "subcity must be one of the Addis Ababa sub-cities"
		case "photo":
			fields[field] = "photos must be image data URIs or http(s) URLs"
		case "url":
			fields[field] = fmt.Sprintf("%s must be a valid URL", field)
		default:
			fields[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &domain.ValidationError{Fields: fields}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Non-empty after trimming whitespace
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})

	validate.RegisterValidation("property_type", func(fl validator.FieldLevel) bool {
		return domain.PropertyType(fl.Field().String()).Valid()
	})

	validate.RegisterValidation("subcity", func(fl validator.FieldLevel) bool {
		subcity := fl.Field().String()
		for _, known := range domain.Subcities {
			if strings.EqualFold(subcity, known) {
				return true
			}
		}
		return false
	})

	// Photos are stored inline as data URIs or referenced by URL
	validate.RegisterValidation("photo", func(fl validator.FieldLevel) bool {
		photo := fl.Field().String()
		if strings.HasPrefix(photo, "data:") {
			return dataURIPattern.MatchString(photo)
		}
		return strings.HasPrefix(photo, "https://") || strings.HasPrefix(photo, "http://")
	})
}

// IsValidEmail checks if an email is valid
func IsValidEmail(email string) bool {
	v := New()
	return v.ValidateVar(email, "required,email") == nil
}

// IsValidPhone checks if a phone number is valid
func IsValidPhone(phone string) bool {
	v := New()
	return v.ValidateVar(phone, "required,phone") == nil
}

// Common validation tags constants
const (
	TagRequired     = "required"
	TagNotBlank     = "notblank"
	TagEmail        = "email"
	TagPhone        = "phone"
	TagUserRole     = "user_role"
	TagPropertyType = "property_type"
	TagSubcity      = "subcity"
	TagPhoto        = "photo"
	TagMin          = "min"
	TagMax          = "max"
	TagURL          = "url"
)
