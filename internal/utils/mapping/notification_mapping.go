package mapping

import (
	"database/sql"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	m := models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Type:           string(d.Type),
		Title:          d.Title,
		Message:        d.Message,
		IsRead:         d.IsRead,
		Priority:       string(d.Priority),
		CreatedAt:      d.CreatedAt,
	}
	if d.CustomerID != nil {
		m.CustomerID = sql.NullString{String: *d.CustomerID, Valid: true}
	}
	return m
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	d := domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           domain.NotificationType(m.Type),
		Title:          m.Title,
		Message:        m.Message,
		IsRead:         m.IsRead,
		Priority:       domain.NotificationPriority(m.Priority),
		CreatedAt:      m.CreatedAt,
	}
	if m.CustomerID.Valid {
		id := m.CustomerID.String
		d.CustomerID = &id
	}
	return d
}
