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

// overdueService implements the OverdueService port.
type overdueService struct {
	BaseService
	overdueRepo  portsrepo.OverdueRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewOverdueService creates a new overdue service.
func NewOverdueService(overdueRepo portsrepo.OverdueRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.OverdueService {
	return &overdueService{overdueRepo: overdueRepo, customerRepo: customerRepo}
}

var _ portssvc.OverdueService = (*overdueService)(nil)

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func (s *overdueService) UpsertStatus(ctx context.Context, caller domain.AuthContext, req dto.UpsertOverdueRequest) (*domain.OverdueStatusDetails, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("customer %s not found: %w", req.CustomerID, apperrors.ErrValidation)
		}
		return nil, err
	}

	status := domain.OverdueStatus{
		StatusID:          uuid.NewString(),
		CustomerID:        customer.CustomerID,
		GoldOverdue25:     ptr(req.GoldOverdue25),
		CashOverdue25:     ptr(req.CashOverdue25),
		GoldOverdue40:     ptr(req.GoldOverdue40),
		CashOverdue40:     ptr(req.CashOverdue40),
		GoldOverdue60:     ptr(req.GoldOverdue60),
		CashOverdue60:     ptr(req.CashOverdue60),
		GoldOverdue90:     ptr(req.GoldOverdue90),
		CashOverdue90:     ptr(req.CashOverdue90),
		GoldOverdue90Plus: ptr(req.GoldOverdue90Plus),
		CashOverdue90Plus: ptr(req.CashOverdue90Plus),
		LastUpdated:       time.Now(),
		ImportedBy:        caller.UserID,
	}

	// Whole-snapshot replace: a bucket omitted upstream lands as zero here,
	// never as the previous value.
	if err := s.overdueRepo.UpsertStatus(ctx, status); err != nil {
		s.LogError(ctx, err, "Failed to upsert overdue status", slog.String("customer_id", customer.CustomerID))
		return nil, fmt.Errorf("failed to upsert overdue status: %w", err)
	}

	stored, err := s.overdueRepo.FindStatusByCustomer(ctx, customer.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload overdue status: %w", err)
	}

	return &domain.OverdueStatusDetails{
		OverdueStatus:  *stored,
		CustomerName:   customer.Name,
		CustomerPhone:  customer.Phone,
		CustomerRegion: customer.Region,
	}, nil
}

func (s *overdueService) ImportStatuses(ctx context.Context, caller domain.AuthContext, rows []dto.UpsertOverdueRequest) (dto.ImportResult, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return dto.ImportResult{}, err
	}

	result := dto.ImportResult{Errors: []dto.RowError{}}
	for i, row := range rows {
		if _, err := s.UpsertStatus(ctx, caller, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.RowError{
				Row:     i + 1,
				Message: err.Error(),
			})
			continue
		}
		result.Success++
	}

	s.LogInfo(ctx, "Overdue import finished",
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed))
	return result, nil
}

func (s *overdueService) GetStatusByCustomer(ctx context.Context, caller domain.AuthContext, customerID string) (*domain.OverdueStatusDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	status, err := s.overdueRepo.FindStatusByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load overdue status", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to load overdue status: %w", err)
	}

	details := &domain.OverdueStatusDetails{OverdueStatus: *status}
	if customer, err := s.customerRepo.FindCustomerByID(ctx, customerID); err == nil {
		details.CustomerName = customer.Name
		details.CustomerPhone = customer.Phone
		details.CustomerRegion = customer.Region
	}
	return details, nil
}

func (s *overdueService) ListStatuses(ctx context.Context, caller domain.AuthContext) ([]domain.OverdueStatusDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	statuses, err := s.overdueRepo.FindAllStatuses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue statuses")
		return nil, fmt.Errorf("failed to list overdue statuses: %w", err)
	}

	// Salespeople only see statuses for customers in their own book.
	filter := portsrepo.CustomerListFilter{}
	if caller.IsSalesperson() {
		filter.SalesPersonID = caller.UserID
	}
	customers, err := s.customerRepo.FindCustomers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers for enrichment: %w", err)
	}
	byID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}

	details := make([]domain.OverdueStatusDetails, 0, len(statuses))
	for _, status := range statuses {
		c, ok := byID[status.CustomerID]
		if !ok {
			if caller.IsSalesperson() {
				continue
			}
			details = append(details, domain.OverdueStatusDetails{OverdueStatus: status})
			continue
		}
		details = append(details, domain.OverdueStatusDetails{
			OverdueStatus:  status,
			CustomerName:   c.Name,
			CustomerPhone:  c.Phone,
			CustomerRegion: c.Region,
		})
	}
	return details, nil
}

func (s *overdueService) NormalizeLegacy(ctx context.Context, caller domain.AuthContext) (dto.NormalizeResult, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return dto.NormalizeResult{}, err
	}

	total, fixed, err := s.overdueRepo.NormalizeLegacy(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to normalize legacy overdue rows")
		return dto.NormalizeResult{}, fmt.Errorf("failed to normalize legacy rows: %w", err)
	}

	s.LogInfo(ctx, "Legacy overdue rows normalized",
		slog.Int64("total", total),
		slog.Int64("fixed", fixed))
	return dto.NormalizeResult{Total: total, Fixed: fixed}, nil
}
