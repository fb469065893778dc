package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// CustomerReaderSvc exposes read access to the customer book, scoped to the
// caller's role.
type CustomerReaderSvc interface {
	// GetCustomer fetches one customer. Salespeople can only read customers
	// they own.
	GetCustomer(ctx context.Context, caller domain.AuthContext, customerID string) (*domain.CustomerDetails, error)

	// ListCustomers returns the caller's visible customers with optional
	// region and search filters. Admins may additionally filter by owner.
	ListCustomers(ctx context.Context, caller domain.AuthContext, params dto.ListCustomersParams) ([]domain.CustomerDetails, error)

	// ListRegions returns the distinct regions of the caller's visible
	// customers.
	ListRegions(ctx context.Context, caller domain.AuthContext) ([]string, error)
}

// CustomerWriterSvc mutates the customer book.
type CustomerWriterSvc interface {
	// CreateCustomer registers a customer. Phone numbers are unique across
	// the whole book. Salespeople always own what they create; admins must
	// name the owner.
	CreateCustomer(ctx context.Context, caller domain.AuthContext, req dto.CreateCustomerRequest) (*domain.CustomerDetails, error)

	// UpdateCustomer applies a partial update. Ownership rules match
	// GetCustomer; only admins may reassign the owner.
	UpdateCustomer(ctx context.Context, caller domain.AuthContext, customerID string, req dto.UpdateCustomerRequest) (*domain.CustomerDetails, error)

	// DeleteCustomer removes a customer and everything hanging off it.
	DeleteCustomer(ctx context.Context, caller domain.AuthContext, customerID string) error

	// DeleteAllCustomers wipes the entire book. Admin only.
	DeleteAllCustomers(ctx context.Context, caller domain.AuthContext) (dto.PurgeResult, error)

	// ImportCustomers bulk-inserts rows with per-row failure isolation.
	ImportCustomers(ctx context.Context, caller domain.AuthContext, rows []dto.CustomerRow) (dto.ImportResult, error)

	// UpsertCustomers bulk-upserts rows keyed by phone number, again with
	// per-row failure isolation.
	UpsertCustomers(ctx context.Context, caller domain.AuthContext, rows []dto.CustomerRow) (dto.UpsertResult, error)
}

// CustomerService is the full customer surface.
type CustomerService interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
