package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"rental-frontend/app/domain"
	"rental-frontend/app/port"
)

// NotificationRepository implements port.NotificationRepository
type NotificationRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

var _ port.NotificationRepository = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db DatabaseIface, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		logger: logger.With("component", "notification_repository"),
	}
}

// ListForUser returns the user's notifications, newest first
func (r *NotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, listing_id, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list notifications", "user_id", userID, "error", err)
		return nil, translateError(err, "notification")
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ListingID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "notification")
	}

	return notifications, nil
}

// MarkRead flags one of the user's notifications as read
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.logger.Error("Failed to mark notification read", "notification_id", id, "error", err)
		return translateError(err, "notification")
	}
	if tag.RowsAffected() == 0 {
		return domain.NewAuthError(domain.ErrCodeNotFound, "notification not found", nil)
	}
	return nil
}
