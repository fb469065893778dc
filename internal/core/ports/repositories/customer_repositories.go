package repositories

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// CustomerListFilter narrows customer listing. A nil/empty field means "no
// constraint"; Region "all" is the sentinel for no region constraint.
type CustomerListFilter struct {
	SalesPersonID string
	Region        string
	SearchTerm    string
}

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByPhone retrieves a customer by the tenant-wide unique phone.
	FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error)

	// FindCustomers retrieves customers matching the filter.
	FindCustomers(ctx context.Context, filter CustomerListFilter) ([]domain.Customer, error)

	// FindRegions retrieves the distinct region labels, optionally scoped to
	// one salesperson's customers. Sorted ascending.
	FindRegions(ctx context.Context, salesPersonID string) ([]string, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer replaces every editable field of an existing customer.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerLifecycleManager defines destructive customer operations.
type CustomerLifecycleManager interface {
	// DeleteCustomerCascade deletes every collection referencing the customer
	// and then the customer row, in one transaction.
	DeleteCustomerCascade(ctx context.Context, customerID string) error

	// DeleteAllCustomers deletes every collection and every customer.
	// Returns (customers deleted, collections deleted).
	DeleteAllCustomers(ctx context.Context) (int64, int64, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerLifecycleManager
}
