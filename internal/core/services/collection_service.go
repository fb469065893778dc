package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
	"github.com/goldsouq/debt_collection_app/internal/utils"
)

// collectionService implements the CollectionService port. The actual balance
// decrement happens inside the repository transaction; this layer enforces the
// caller-facing preconditions and enriches the read side.
type collectionService struct {
	BaseService
	collectionRepo   portsrepo.CollectionRepositoryFacade
	customerRepo     portsrepo.CustomerReader
	userRepo         portsrepo.UserReader
	notificationRepo portsrepo.NotificationWriter
}

// NewCollectionService creates a new collection service.
func NewCollectionService(
	collectionRepo portsrepo.CollectionRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	userRepo portsrepo.UserReader,
	notificationRepo portsrepo.NotificationWriter,
) portssvc.CollectionService {
	return &collectionService{
		collectionRepo:   collectionRepo,
		customerRepo:     customerRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

var _ portssvc.CollectionService = (*collectionService)(nil)

func (s *collectionService) AddCollection(ctx context.Context, caller domain.AuthContext, req dto.AddCollectionRequest) (*domain.CollectionDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	if req.GoldAmount.IsNegative() || req.CashAmount.IsNegative() {
		return nil, fmt.Errorf("collection amounts cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.GoldAmount.IsZero() && req.CashAmount.IsZero() {
		return nil, fmt.Errorf("collection must settle a non-zero amount: %w", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if caller.IsSalesperson() && customer.SalesPersonID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}

	// Early rejection for a friendlier error. The repository re-checks under
	// a row lock, so a concurrent collection can still fail there.
	if req.GoldAmount.GreaterThan(customer.GoldDebt) {
		return nil, fmt.Errorf("gold amount %s exceeds outstanding gold debt %s: %w",
			req.GoldAmount, customer.GoldDebt, apperrors.ErrValidation)
	}
	if req.CashAmount.GreaterThan(customer.CashDebt) {
		return nil, fmt.Errorf("cash amount %s exceeds outstanding cash debt %s: %w",
			req.CashAmount, customer.CashDebt, apperrors.ErrValidation)
	}

	now := time.Now()
	collection := domain.Collection{
		CollectionID: uuid.NewString(),
		CustomerID:   customer.CustomerID,
		// Attribution follows the customer's current owner, not the caller,
		// so an admin recording on behalf still credits the salesperson.
		SalesPersonID:  customer.SalesPersonID,
		GoldAmount:     req.GoldAmount,
		CashAmount:     req.CashAmount,
		Notes:          req.Notes,
		CollectionDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.collectionRepo.SaveCollection(ctx, collection); err != nil {
		s.LogError(ctx, err, "Failed to save collection",
			slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Collection recorded",
		slog.String("collection_id", collection.CollectionID),
		slog.String("customer_id", customer.CustomerID))

	s.notifyCollectionSuccess(ctx, collection, customer)

	details := &domain.CollectionDetails{
		Collection:    collection,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
	}
	if owner, err := s.userRepo.FindUserByID(ctx, customer.SalesPersonID); err == nil {
		details.SalesPersonName = owner.Name
	}
	return details, nil
}

// notifyCollectionSuccess raises a low-priority notification to the owning
// salesperson. Best effort: a notification failure never rolls back the
// settlement.
func (s *collectionService) notifyCollectionSuccess(ctx context.Context, collection domain.Collection, customer *domain.Customer) {
	customerID := customer.CustomerID
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         customer.SalesPersonID,
		Type:           domain.NotificationCollectionSuccess,
		Title:          "Collection recorded",
		Message: fmt.Sprintf("Collected %s g gold and %s cash from %s.",
			collection.GoldAmount, collection.CashAmount, customer.Name),
		CustomerID: &customerID,
		Priority:   domain.PriorityLow,
		CreatedAt:  time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to create collection notification",
			slog.String("collection_id", collection.CollectionID))
	}
}

func (s *collectionService) DeleteCollection(ctx context.Context, caller domain.AuthContext, collectionID string) error {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return err
	}

	if err := s.collectionRepo.DeleteCollection(ctx, collectionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete collection", slog.String("collection_id", collectionID))
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	s.LogInfo(ctx, "Collection deleted and amounts restored", slog.String("collection_id", collectionID))
	return nil
}

func (s *collectionService) ListByCustomer(ctx context.Context, caller domain.AuthContext, customerID string) ([]domain.CollectionDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if caller.IsSalesperson() && customer.SalesPersonID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}

	collections, err := s.collectionRepo.FindCollectionsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list collections", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return s.enrich(ctx, collections)
}

func (s *collectionService) ListMine(ctx context.Context, caller domain.AuthContext) ([]domain.CollectionDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	collections, err := s.collectionRepo.FindCollectionsBySalesperson(ctx, caller.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list own collections")
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return s.enrich(ctx, collections)
}

func (s *collectionService) ListAll(ctx context.Context, caller domain.AuthContext) ([]domain.CollectionDetails, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	collections, err := s.collectionRepo.FindAllCollections(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all collections")
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return s.enrich(ctx, collections)
}

// enrich joins customer and salesperson display fields onto collection rows.
func (s *collectionService) enrich(ctx context.Context, collections []domain.Collection) ([]domain.CollectionDetails, error) {
	customerNames := make(map[string]*domain.Customer)
	userNames := make(map[string]string)

	details := make([]domain.CollectionDetails, 0, len(collections))
	for _, c := range collections {
		d := domain.CollectionDetails{Collection: c}

		customer, seen := customerNames[c.CustomerID]
		if !seen {
			found, err := s.customerRepo.FindCustomerByID(ctx, c.CustomerID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to enrich collections: %w", err)
			}
			customer = found
			customerNames[c.CustomerID] = customer
		}
		if customer != nil {
			d.CustomerName = customer.Name
			d.CustomerPhone = customer.Phone
		}

		name, seen := userNames[c.SalesPersonID]
		if !seen {
			if owner, err := s.userRepo.FindUserByID(ctx, c.SalesPersonID); err == nil {
				name = owner.Name
			}
			userNames[c.SalesPersonID] = name
		}
		d.SalesPersonName = name

		details = append(details, d)
	}
	return details, nil
}

func (s *collectionService) MyStats(ctx context.Context, caller domain.AuthContext) (domain.CollectionStats, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return domain.CollectionStats{}, err
	}

	collections, err := s.collectionRepo.FindCollectionsBySalesperson(ctx, caller.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load collections for stats")
		return domain.CollectionStats{}, fmt.Errorf("failed to load collections: %w", err)
	}

	return foldStats(collections, time.Now()), nil
}

func (s *collectionService) AllStats(ctx context.Context, caller domain.AuthContext) ([]domain.SalespersonCollectionStats, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	salespeople, err := s.userRepo.FindUsersByRole(ctx, domain.RoleSalesperson)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salespeople for stats")
		return nil, fmt.Errorf("failed to list salespeople: %w", err)
	}

	collections, err := s.collectionRepo.FindAllCollections(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load collections for stats")
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	byOwner := make(map[string][]domain.Collection)
	for _, c := range collections {
		byOwner[c.SalesPersonID] = append(byOwner[c.SalesPersonID], c)
	}

	now := time.Now()
	stats := make([]domain.SalespersonCollectionStats, 0, len(salespeople))
	for _, sp := range salespeople {
		folded := foldStats(byOwner[sp.UserID], now)
		stats = append(stats, domain.SalespersonCollectionStats{
			SalesPersonID:   sp.UserID,
			SalesPersonName: sp.Name,
			Total:           folded.Total,
			Today:           folded.Today,
		})
	}
	return stats, nil
}

// foldStats partitions collections into all-time, today and this-week windows
// relative to now.
func foldStats(collections []domain.Collection, now time.Time) domain.CollectionStats {
	dayStart := utils.StartOfDay(now)
	weekStart := utils.StartOfWeek(now)

	stats := domain.CollectionStats{}
	for _, c := range collections {
		stats.Total.Gold = stats.Total.Gold.Add(c.GoldAmount)
		stats.Total.Cash = stats.Total.Cash.Add(c.CashAmount)
		stats.Total.Count++

		if !c.CollectionDate.Before(dayStart) {
			stats.Today.Gold = stats.Today.Gold.Add(c.GoldAmount)
			stats.Today.Cash = stats.Today.Cash.Add(c.CashAmount)
			stats.Today.Count++
		}
		if !c.CollectionDate.Before(weekStart) {
			stats.Week.Gold = stats.Week.Gold.Add(c.GoldAmount)
			stats.Week.Cash = stats.Week.Cash.Add(c.CashAmount)
			stats.Week.Count++
		}
	}
	return stats
}
