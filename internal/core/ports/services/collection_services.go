package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// CollectionService records settlements and serves collection history and
// aggregates.
type CollectionService interface {
	// AddCollection settles part of a customer's debt. The amounts are
	// validated against the outstanding balances and the decrement plus the
	// history insert happen atomically.
	AddCollection(ctx context.Context, caller domain.AuthContext, req dto.AddCollectionRequest) (*domain.CollectionDetails, error)

	// DeleteCollection reverses a recorded settlement, restoring the amounts
	// onto the customer's balances. Admin only.
	DeleteCollection(ctx context.Context, caller domain.AuthContext, collectionID string) error

	// ListByCustomer returns a customer's settlement history, newest first.
	ListByCustomer(ctx context.Context, caller domain.AuthContext, customerID string) ([]domain.CollectionDetails, error)

	// ListMine returns the caller's own settlements, newest first.
	ListMine(ctx context.Context, caller domain.AuthContext) ([]domain.CollectionDetails, error)

	// ListAll returns every settlement. Admin only.
	ListAll(ctx context.Context, caller domain.AuthContext) ([]domain.CollectionDetails, error)

	// MyStats aggregates the caller's settlements over all time, today and
	// the current week.
	MyStats(ctx context.Context, caller domain.AuthContext) (domain.CollectionStats, error)

	// AllStats aggregates settlements per salesperson. Admin only.
	AllStats(ctx context.Context, caller domain.AuthContext) ([]domain.SalespersonCollectionStats, error)
}
