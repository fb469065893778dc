package repositories

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// SaleReader defines read operations for sale records.
type SaleReader interface {
	// FindAllSales retrieves every sale record, newest first.
	FindAllSales(ctx context.Context) ([]domain.SaleRecord, error)
}

// SaleWriter defines write operations for sale records.
type SaleWriter interface {
	// SaveSales bulk-inserts sale records in one batch.
	SaveSales(ctx context.Context, sales []domain.SaleRecord) error

	// DeleteAllSales removes every sale record. Returns the number deleted.
	DeleteAllSales(ctx context.Context) (int64, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
