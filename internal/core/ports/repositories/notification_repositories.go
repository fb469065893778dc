package repositories

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	// FindNotificationByID retrieves a specific notification by ID.
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// FindNotificationsByUser retrieves a user's newest notifications, capped at limit.
	FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	// CountUnread counts a user's unread notifications.
	CountUnread(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkRead flags a single notification as read.
	MarkRead(ctx context.Context, notificationID string) error

	// MarkAllRead flags all of a user's unread notifications as read.
	// Returns the number of rows updated.
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
