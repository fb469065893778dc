package domain

import "time"

// NotificationType enumerates the automated triggers that create notifications.
type NotificationType string

const (
	NotificationHighDebt          NotificationType = "high_debt"
	NotificationOverdueAlert      NotificationType = "overdue_alert"
	NotificationCollectionSuccess NotificationType = "collection_success"
	NotificationDailySummary      NotificationType = "daily_summary"
)

// NotificationPriority is the display priority of a notification.
type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// Notification is an alert record addressed to a single user. Notifications
// are created only by internal triggers, never by direct user action, and are
// read or deleted only by their owner.
type Notification struct {
	NotificationID string               `json:"notificationID"` // Primary Key (UUID)
	UserID         string               `json:"userID"`         // FK -> users.user_id
	Type           NotificationType     `json:"type"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	CustomerID     *string              `json:"customerID,omitempty"`
	IsRead         bool                 `json:"isRead"`
	Priority       NotificationPriority `json:"priority"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// NotificationDetails enriches a Notification with the referenced customer's
// display fields when a customer is attached.
type NotificationDetails struct {
	Notification
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}
