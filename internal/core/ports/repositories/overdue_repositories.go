package repositories

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// OverdueReader defines read operations for overdue aging snapshots.
type OverdueReader interface {
	// FindStatusByCustomer retrieves the snapshot for a customer, or
	// apperrors.ErrNotFound when none exists.
	FindStatusByCustomer(ctx context.Context, customerID string) (*domain.OverdueStatus, error)

	// FindAllStatuses retrieves every snapshot.
	FindAllStatuses(ctx context.Context) ([]domain.OverdueStatus, error)
}

// OverdueWriter defines write operations for overdue aging snapshots.
type OverdueWriter interface {
	// UpsertStatus replaces the whole snapshot for the status's customer,
	// inserting when none exists. Never merges individual buckets.
	UpsertStatus(ctx context.Context, status domain.OverdueStatus) error

	// NormalizeLegacy coerces every NULL legacy bucket value to zero.
	// Returns (total rows, rows fixed). Idempotent.
	NormalizeLegacy(ctx context.Context) (int64, int64, error)
}

// OverdueRepositoryFacade combines all overdue-related repository interfaces.
type OverdueRepositoryFacade interface {
	OverdueReader
	OverdueWriter
}
