package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// Debt thresholds beyond which the scan flags a customer as high risk.
// Total debt treats a gram of gold and a currency unit alike, matching how
// the retailers read the combined figure.
var (
	highDebtTotalThreshold = decimal.NewFromInt(10000)
	highDebtGoldThreshold  = decimal.NewFromInt(100)
)

// notificationListLimit caps how many notifications a single listing returns.
const notificationListLimit = 50

// notificationService implements the NotificationService port.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	customerRepo     portsrepo.CustomerReader
	userRepo         portsrepo.UserReader
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	notificationRepo portsrepo.NotificationRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	userRepo portsrepo.UserReader,
) portssvc.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		customerRepo:     customerRepo,
		userRepo:         userRepo,
	}
}

var _ portssvc.NotificationService = (*notificationService)(nil)

func (s *notificationService) CreateNotification(ctx context.Context, caller domain.AuthContext, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %s not found: %w", req.UserID, apperrors.ErrValidation)
		}
		return nil, err
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         req.UserID,
		Type:           domain.NotificationType(req.Type),
		Title:          req.Title,
		Message:        req.Message,
		Priority:       domain.NotificationPriority(req.Priority),
		CreatedAt:      time.Now(),
	}
	if req.CustomerID != "" {
		id := req.CustomerID
		notification.CustomerID = &id
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification", slog.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return &notification, nil
}

func (s *notificationService) ListMine(ctx context.Context, caller domain.AuthContext) ([]domain.NotificationDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, caller.UserID, notificationListLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications")
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	details := make([]domain.NotificationDetails, 0, len(notifications))
	customerCache := make(map[string]*domain.Customer)
	for _, n := range notifications {
		d := domain.NotificationDetails{Notification: n}
		if n.CustomerID != nil {
			customer, seen := customerCache[*n.CustomerID]
			if !seen {
				found, err := s.customerRepo.FindCustomerByID(ctx, *n.CustomerID)
				if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("failed to enrich notifications: %w", err)
				}
				customer = found
				customerCache[*n.CustomerID] = customer
			}
			if customer != nil {
				d.CustomerName = customer.Name
				d.CustomerPhone = customer.Phone
			}
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, caller domain.AuthContext) (int, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.CountUnread(ctx, caller.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unread notifications")
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// ownedNotification loads a notification and verifies the caller owns it.
func (s *notificationService) ownedNotification(ctx context.Context, caller domain.AuthContext, notificationID string) (*domain.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification.UserID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}
	return notification, nil
}

func (s *notificationService) MarkRead(ctx context.Context, caller domain.AuthContext, notificationID string) error {
	if err := s.RequireRole(ctx, caller); err != nil {
		return err
	}

	if _, err := s.ownedNotification(ctx, caller, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, caller domain.AuthContext) (int64, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.MarkAllRead(ctx, caller.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read")
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return count, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, caller domain.AuthContext, notificationID string) error {
	if err := s.RequireRole(ctx, caller); err != nil {
		return err
	}

	if _, err := s.ownedNotification(ctx, caller, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		s.LogError(ctx, err, "Failed to delete notification", slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

func (s *notificationService) ScanHighDebt(ctx context.Context, caller domain.AuthContext) (int, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return 0, err
	}

	customers, err := s.customerRepo.FindCustomers(ctx, portsrepo.CustomerListFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers for debt scan")
		return 0, fmt.Errorf("failed to load customers: %w", err)
	}

	created := 0
	for _, customer := range customers {
		totalDebt := customer.GoldDebt.Add(customer.CashDebt)
		if totalDebt.LessThanOrEqual(highDebtTotalThreshold) &&
			customer.GoldDebt.LessThanOrEqual(highDebtGoldThreshold) {
			continue
		}

		customerID := customer.CustomerID
		notification := domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         customer.SalesPersonID,
			Type:           domain.NotificationHighDebt,
			Title:          "High debt alert",
			Message: fmt.Sprintf("%s owes %s g gold and %s cash.",
				customer.Name, customer.GoldDebt, customer.CashDebt),
			CustomerID: &customerID,
			Priority:   domain.PriorityHigh,
			CreatedAt:  time.Now(),
		}
		if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
			s.LogError(ctx, err, "Failed to save high debt alert",
				slog.String("customer_id", customer.CustomerID))
			continue
		}
		created++
	}

	s.LogInfo(ctx, "High debt scan finished", slog.Int("alerts_created", created))
	return created, nil
}
