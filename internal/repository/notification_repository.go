package repository

import (
	"database/sql"
	"time"

	"github.com/maheshk/campusconnect-backend/internal/model"
)

// NotificationRepositoryInterface defines methods used by the service
type NotificationRepositoryInterface interface {
	Create(n *model.Notification) error
	Count() (int, error)
	ListRecent(limit int) ([]model.Notification, error)
}

// NotificationRepository is the concrete implementation. The table is
// append-only: rows are never updated or deleted.
type NotificationRepository struct {
	DB *sql.DB
}

// Create appends one delivery-log entry and returns the created ID.
func (r *NotificationRepository) Create(n *model.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	query := `
        INSERT INTO notifications_sent (type, title, content, recipient_email, success, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	return r.DB.QueryRow(
		query,
		n.Type,
		n.Title,
		n.Content,
		n.RecipientEmail,
		n.Success,
		n.CreatedAt,
	).Scan(&n.ID)
}

// Count returns the total number of delivery-log entries.
func (r *NotificationRepository) Count() (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM notifications_sent`).Scan(&total)
	return total, err
}

// ListRecent fetches the newest delivery-log entries for the admin view.
func (r *NotificationRepository) ListRecent(limit int) ([]model.Notification, error) {
	if limit < 1 {
		limit = 50
	}
	query := `
        SELECT id, type, title, content, recipient_email, success, created_at
        FROM notifications_sent
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Content, &n.RecipientEmail, &n.Success, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)
