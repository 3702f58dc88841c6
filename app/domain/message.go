package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users, optionally about a listing
type Message struct {
	ID         uuid.UUID  `json:"id"`
	FromUserID uuid.UUID  `json:"from_user_id"`
	ToUserID   uuid.UUID  `json:"to_user_id"`
	ListingID  *uuid.UUID `json:"listing_id,omitempty"`
	Content    string     `json:"content"`
	Timestamp  time.Time  `json:"timestamp"`
}

// NewMessage is the payload for sending a message
type NewMessage struct {
	ToUserID  uuid.UUID  `json:"to_user_id" validate:"required"`
	ListingID *uuid.UUID `json:"listing_id,omitempty"`
	Content   string     `json:"content" validate:"required,notblank,max=4000"`
}

// Notification informs a user about activity on a listing
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ListingID *uuid.UUID `json:"listing_id,omitempty"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}
