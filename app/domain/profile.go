package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the marketplace role of a user
type Role string

const (
	RoleRenter Role = "renter"
	RoleAgent  Role = "agent"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleRenter || r == RoleAgent
}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}

// Profile is the application-level user record keyed by identity id
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of the profile
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.AvatarURL != nil {
		avatar := *p.AvatarURL
		c.AvatarURL = &avatar
	}
	return &c
}

// Equal reports whether two profiles hold the same values
func (p *Profile) Equal(o *Profile) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.ID != o.ID || p.Role != o.Role || p.Name != o.Name || p.Phone != o.Phone {
		return false
	}
	if !p.CreatedAt.Equal(o.CreatedAt) {
		return false
	}
	if p.AvatarURL == nil || o.AvatarURL == nil {
		return p.AvatarURL == o.AvatarURL
	}
	return *p.AvatarURL == *o.AvatarURL
}

// IsAgent returns true if the profile belongs to an agent
func (p *Profile) IsAgent() bool {
	return p.Role == RoleAgent
}

// ProfileUpdate carries the changed profile fields; nil fields are left untouched
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,notblank,phone"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// IsEmpty returns true if no field is set
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.AvatarURL == nil
}
