package repositories

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// CollectionReader defines read operations for collection data.
type CollectionReader interface {
	// FindCollectionByID retrieves a specific collection by ID.
	FindCollectionByID(ctx context.Context, collectionID string) (*domain.Collection, error)

	// FindCollectionsByCustomer retrieves a customer's collections, newest first.
	FindCollectionsByCustomer(ctx context.Context, customerID string) ([]domain.Collection, error)

	// FindCollectionsBySalesperson retrieves a salesperson's collections, newest first.
	FindCollectionsBySalesperson(ctx context.Context, salesPersonID string) ([]domain.Collection, error)

	// FindAllCollections retrieves every collection, newest first.
	FindAllCollections(ctx context.Context) ([]domain.Collection, error)
}

// CollectionSettler defines the atomic settlement transitions. Both methods
// execute the record change and the customer balance change as one database
// transaction; neither effect is ever observed without the other.
type CollectionSettler interface {
	// SaveCollection locks the customer row, re-validates that the collection
	// amounts do not exceed the current debts, decrements the balances and
	// inserts the collection row. Returns an error wrapping
	// apperrors.ErrValidation when either amount exceeds the locked balance,
	// or apperrors.ErrNotFound when the customer is absent.
	SaveCollection(ctx context.Context, collection domain.Collection) error

	// DeleteCollection re-increments the referenced customer's balances by the
	// collection amounts and deletes the collection row. Returns an error
	// wrapping apperrors.ErrNotFound when the collection or its customer is
	// absent.
	DeleteCollection(ctx context.Context, collectionID string) error
}

// CollectionRepositoryFacade combines all collection-related repository interfaces.
type CollectionRepositoryFacade interface {
	CollectionReader
	CollectionSettler
}
