// internal/model/notification.go
package model

import "time"

// Notification type values
const (
	NotificationWelcome = "welcome"
	NotificationLaunch  = "launch"
	NotificationUpdate  = "update"
)

// Notification is one delivery-log entry: a single attempted email send,
// recorded whether or not the transport accepted it.
type Notification struct {
	ID             int       `db:"id" json:"id"`
	Type           string    `db:"type" json:"type"` // welcome, launch, update
	Title          string    `db:"title" json:"title"`
	Content        string    `db:"content" json:"content"`
	RecipientEmail string    `db:"recipient_email" json:"recipient_email"`
	Success        bool      `db:"success" json:"success"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
