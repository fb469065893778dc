package models

import (
	"database/sql"
	"time"
)

// Notification represents a row of the notifications table.
type Notification struct {
	NotificationID string         `db:"notification_id"`
	UserID         string         `db:"user_id"`
	Type           string         `db:"type"`
	Title          string         `db:"title"`
	Message        string         `db:"message"`
	CustomerID     sql.NullString `db:"customer_id"`
	IsRead         bool           `db:"is_read"`
	Priority       string         `db:"priority"`
	CreatedAt      time.Time      `db:"created_at"`
}
