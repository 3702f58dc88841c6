package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// MessageRepository implements port.MessageRepository
type MessageRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

var _ port.MessageRepository = (*MessageRepository)(nil)

// NewMessageRepository creates a new PostgreSQL message repository
func NewMessageRepository(db DatabaseIface, logger *slog.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger.With("component", "message_repository"),
	}
}

// Send stores a message from fromUserID
func (r *MessageRepository) Send(ctx context.Context, fromUserID uuid.UUID, msg domain.NewMessage) (*domain.Message, error) {
	query := `
		INSERT INTO messages (id, from_user_id, to_user_id, listing_id, content)
		VALUES ($1, $2, $3, $4, btrim($5))
		RETURNING id, from_user_id, to_user_id, listing_id, content, "timestamp"`

	var sent domain.Message
	err := r.db.QueryRow(ctx, query, uuid.New(), fromUserID, msg.ToUserID, msg.ListingID, msg.Content).Scan(
		&sent.ID,
		&sent.FromUserID,
		&sent.ToUserID,
		&sent.ListingID,
		&sent.Content,
		&sent.Timestamp,
	)
	if err != nil {
		r.logger.Error("Failed to send message", "from_user_id", fromUserID, "to_user_id", msg.ToUserID, "error", err)
		return nil, translateError(err, "message")
	}

	r.logger.Info("Message sent", "message_id", sent.ID)
	return &sent, nil
}

// ListForUser returns messages sent or received by userID, newest first
func (r *MessageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error) {
	query := `
		SELECT id, from_user_id, to_user_id, listing_id, content, "timestamp"
		FROM messages
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY "timestamp" DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list messages", "user_id", userID, "error", err)
		return nil, translateError(err, "message")
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.ListingID, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "message")
	}

	return messages, nil
}
