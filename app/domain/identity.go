package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authentication record issued by the identity provider
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// IsExpired returns true if the session backing the identity has expired
func (i *Identity) IsExpired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// SignInRequest holds sign-in credentials
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest holds everything needed to create an identity and its profile
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,notblank"`
	Phone    string `json:"phone" validate:"required,notblank,phone"`
	Role     Role   `json:"role" validate:"required,user_role"`
}

// Traits returns the identity metadata sent to the provider on registration
func (r SignUpRequest) Traits() map[string]any {
	return map[string]any{
		"name":  r.Name,
		"phone": r.Phone,
		"role":  string(r.Role),
	}
}
