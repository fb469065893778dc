package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// NotificationService serves per-user notifications and runs the debt scan.
type NotificationService interface {
	// CreateNotification targets one user with a message. Admin only.
	CreateNotification(ctx context.Context, caller domain.AuthContext, req dto.CreateNotificationRequest) (*domain.Notification, error)

	// ListMine returns the caller's most recent notifications, enriched with
	// customer names where linked.
	ListMine(ctx context.Context, caller domain.AuthContext) ([]domain.NotificationDetails, error)

	// UnreadCount returns the caller's unread notification count.
	UnreadCount(ctx context.Context, caller domain.AuthContext) (int, error)

	// MarkRead flips one of the caller's notifications to read.
	MarkRead(ctx context.Context, caller domain.AuthContext, notificationID string) error

	// MarkAllRead flips all of the caller's notifications to read and returns
	// how many changed.
	MarkAllRead(ctx context.Context, caller domain.AuthContext) (int64, error)

	// DeleteNotification removes one of the caller's notifications.
	DeleteNotification(ctx context.Context, caller domain.AuthContext, notificationID string) error

	// ScanHighDebt walks the customer book and raises a high-priority alert
	// to each owner whose customer crosses the debt thresholds. Admin only.
	ScanHighDebt(ctx context.Context, caller domain.AuthContext) (int, error)
}
