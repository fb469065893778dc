package dto

import (
	"time"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// CreateNotificationRequest targets one user with a message.
type CreateNotificationRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=high_debt overdue_alert collection_success daily_summary"`
	Title      string `json:"title" binding:"required"`
	Message    string `json:"message" binding:"required"`
	CustomerID string `json:"customerId,omitempty"`
	Priority   string `json:"priority" binding:"required,oneof=high medium low"`
}

// NotificationResponse is the outward representation of a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationId"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	CustomerID     string    `json:"customerId,omitempty"`
	CustomerName   string    `json:"customerName,omitempty"`
	IsRead         bool      `json:"isRead"`
	Priority       string    `json:"priority"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts notification details to their response form.
func ToNotificationResponse(n domain.NotificationDetails) NotificationResponse {
	resp := NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		CustomerName:   n.CustomerName,
		IsRead:         n.IsRead,
		Priority:       string(n.Priority),
		CreatedAt:      n.CreatedAt,
	}
	if n.CustomerID != nil {
		resp.CustomerID = *n.CustomerID
	}
	return resp
}

// ToNotificationResponses converts a slice of notification details.
func ToNotificationResponses(notifications []domain.NotificationDetails) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, ToNotificationResponse(n))
	}
	return resp
}

// UnreadCountResponse carries the caller's unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MarkAllReadResponse reports how many notifications were flipped to read.
type MarkAllReadResponse struct {
	Count int64 `json:"count"`
}

// HighDebtScanResponse reports how many alerts the debt scan produced.
type HighDebtScanResponse struct {
	AlertsCreated int `json:"alertsCreated"`
}
