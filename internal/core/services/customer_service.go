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

// customerService implements the CustomerService port.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	userRepo     portsrepo.UserReader
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, userRepo portsrepo.UserReader) portssvc.CustomerService {
	return &customerService{customerRepo: customerRepo, userRepo: userRepo}
}

var _ portssvc.CustomerService = (*customerService)(nil)

// resolveOwner determines which salesperson will own a customer being created
// or imported. Salespeople always own their own customers; admins must name
// the owner explicitly.
func (s *customerService) resolveOwner(ctx context.Context, caller domain.AuthContext, requested string) (string, error) {
	if caller.IsSalesperson() {
		return caller.UserID, nil
	}
	if requested == "" {
		return "", fmt.Errorf("salesPersonId is required: %w", apperrors.ErrValidation)
	}
	owner, err := s.userRepo.FindUserByID(ctx, requested)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("salesperson %s not found: %w", requested, apperrors.ErrValidation)
		}
		return "", fmt.Errorf("failed to resolve owner: %w", err)
	}
	return owner.UserID, nil
}

// salespersonNames maps user IDs to display names for read-time enrichment.
func (s *customerService) salespersonNames(ctx context.Context) (map[string]string, error) {
	names := make(map[string]string)
	for _, role := range []domain.UserRole{domain.RoleSalesperson, domain.RoleAdmin} {
		users, err := s.userRepo.FindUsersByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("failed to load user names: %w", err)
		}
		for _, u := range users {
			names[u.UserID] = u.Name
		}
	}
	return names, nil
}

func (s *customerService) toDetails(ctx context.Context, c domain.Customer) (*domain.CustomerDetails, error) {
	details := &domain.CustomerDetails{Customer: c}
	owner, err := s.userRepo.FindUserByID(ctx, c.SalesPersonID)
	if err == nil {
		details.SalesPersonName = owner.Name
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	return details, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, caller domain.AuthContext, req dto.CreateCustomerRequest) (*domain.CustomerDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	ownerID, err := s.resolveOwner(ctx, caller, req.SalesPersonID)
	if err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.FindCustomerByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check phone uniqueness", slog.String("phone", req.Phone))
		return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a customer with phone %s already exists: %w", req.Phone, apperrors.ErrDuplicate)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Region:        req.Region,
		GoldDebt:      req.GoldDebt,
		CashDebt:      req.CashDebt,
		CreditLimit:   req.CreditLimit,
		SalesPersonID: ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("a customer with phone %s already exists: %w", req.Phone, apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created",
		slog.String("customer_id", customer.CustomerID),
		slog.String("owner_id", ownerID))
	return s.toDetails(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, caller domain.AuthContext, customerID string) (*domain.CustomerDetails, error) {
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

	return s.toDetails(ctx, *customer)
}

func (s *customerService) ListCustomers(ctx context.Context, caller domain.AuthContext, params dto.ListCustomersParams) ([]domain.CustomerDetails, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	filter := portsrepo.CustomerListFilter{
		SalesPersonID: params.SalesPersonID,
		Region:        params.Region,
		SearchTerm:    params.SearchTerm,
	}
	if filter.Region == "all" {
		filter.Region = ""
	}
	// Salespeople only ever see their own book, whatever they ask for.
	if caller.IsSalesperson() {
		filter.SalesPersonID = caller.UserID
	}

	customers, err := s.customerRepo.FindCustomers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	names, err := s.salespersonNames(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]domain.CustomerDetails, 0, len(customers))
	for _, c := range customers {
		details = append(details, domain.CustomerDetails{
			Customer:        c,
			SalesPersonName: names[c.SalesPersonID],
		})
	}
	return details, nil
}

func (s *customerService) ListRegions(ctx context.Context, caller domain.AuthContext) ([]string, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	scope := ""
	if caller.IsSalesperson() {
		scope = caller.UserID
	}

	regions, err := s.customerRepo.FindRegions(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to list regions")
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, caller domain.AuthContext, customerID string, req dto.UpdateCustomerRequest) (*domain.CustomerDetails, error) {
	// Editing balances directly bypasses the settlement path, so only admins
	// may update a customer record.
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil && *req.Phone != customer.Phone {
		existing, err := s.customerRepo.FindCustomerByPhone(ctx, *req.Phone)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("a customer with phone %s already exists: %w", *req.Phone, apperrors.ErrDuplicate)
		}
		customer.Phone = *req.Phone
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Region != nil {
		customer.Region = *req.Region
	}
	if req.GoldDebt != nil {
		customer.GoldDebt = *req.GoldDebt
	}
	if req.CashDebt != nil {
		customer.CashDebt = *req.CashDebt
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = req.CreditLimit
	}
	if req.SalesPersonID != nil && *req.SalesPersonID != customer.SalesPersonID {
		ownerID, err := s.resolveOwner(ctx, caller, *req.SalesPersonID)
		if err != nil {
			return nil, err
		}
		customer.SalesPersonID = ownerID
	}

	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = caller.UserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return s.toDetails(ctx, *customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, caller domain.AuthContext, customerID string) error {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}

	if err := s.customerRepo.DeleteCustomerCascade(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}

func (s *customerService) DeleteAllCustomers(ctx context.Context, caller domain.AuthContext) (dto.PurgeResult, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return dto.PurgeResult{}, err
	}

	customers, collections, err := s.customerRepo.DeleteAllCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to purge customers")
		return dto.PurgeResult{}, fmt.Errorf("failed to purge customers: %w", err)
	}

	s.LogInfo(ctx, "All customers purged",
		slog.Int64("customers", customers),
		slog.Int64("collections", collections))
	return dto.PurgeResult{DeletedCustomers: customers, DeletedCollections: collections}, nil
}

func (s *customerService) ImportCustomers(ctx context.Context, caller domain.AuthContext, rows []dto.CustomerRow) (dto.ImportResult, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return dto.ImportResult{}, err
	}

	result := dto.ImportResult{Errors: []dto.RowError{}}
	for i, row := range rows {
		if err := s.importRow(ctx, caller, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.RowError{
				Row:     i + 1,
				Name:    row.Name,
				Phone:   row.Phone,
				Message: err.Error(),
			})
			continue
		}
		result.Success++
	}

	s.LogInfo(ctx, "Customer import finished",
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed))
	return result, nil
}

// importRow inserts one bulk row. Failures are isolated to the row.
func (s *customerService) importRow(ctx context.Context, caller domain.AuthContext, row dto.CustomerRow) error {
	_, err := s.CreateCustomer(ctx, caller, dto.CreateCustomerRequest{
		Name:          row.Name,
		Phone:         row.Phone,
		Region:        row.Region,
		GoldDebt:      row.GoldDebt,
		CashDebt:      row.CashDebt,
		CreditLimit:   row.CreditLimit,
		SalesPersonID: row.SalesPersonID,
	})
	return err
}

func (s *customerService) UpsertCustomers(ctx context.Context, caller domain.AuthContext, rows []dto.CustomerRow) (dto.UpsertResult, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return dto.UpsertResult{}, err
	}

	result := dto.UpsertResult{Errors: []dto.RowError{}}
	for i, row := range rows {
		created, err := s.upsertRow(ctx, caller, row)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.RowError{
				Row:     i + 1,
				Name:    row.Name,
				Phone:   row.Phone,
				Message: err.Error(),
			})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.LogInfo(ctx, "Customer upsert finished",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed))
	return result, nil
}

// upsertRow creates or updates one bulk row keyed by phone number. Returns
// true when a new customer was created.
func (s *customerService) upsertRow(ctx context.Context, caller domain.AuthContext, row dto.CustomerRow) (bool, error) {
	existing, err := s.customerRepo.FindCustomerByPhone(ctx, row.Phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return true, s.importRow(ctx, caller, row)
		}
		return false, fmt.Errorf("failed to look up phone: %w", err)
	}

	if caller.IsSalesperson() && existing.SalesPersonID != caller.UserID {
		return false, apperrors.ErrForbidden
	}

	existing.Name = row.Name
	existing.Region = row.Region
	existing.GoldDebt = row.GoldDebt
	existing.CashDebt = row.CashDebt
	if row.CreditLimit != nil {
		existing.CreditLimit = row.CreditLimit
	}
	if caller.IsAdmin() && row.SalesPersonID != "" {
		ownerID, err := s.resolveOwner(ctx, caller, row.SalesPersonID)
		if err != nil {
			return false, err
		}
		existing.SalesPersonID = ownerID
	}
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = caller.UserID

	if err := s.customerRepo.UpdateCustomer(ctx, *existing); err != nil {
		return false, fmt.Errorf("failed to update customer: %w", err)
	}
	return false, nil
}

// sumDebts is a small helper for reporting over a customer list.
func sumDebts(customers []domain.Customer) (gold, cash decimal.Decimal) {
	gold, cash = decimal.Zero, decimal.Zero
	for _, c := range customers {
		gold = gold.Add(c.GoldDebt)
		cash = cash.Add(c.CashDebt)
	}
	return gold, cash
}
