package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// SaleService manages imported daily sales records and their rollups.
type SaleService interface {
	// ImportSales stores a batch of daily sales rows. Admin only.
	ImportSales(ctx context.Context, caller domain.AuthContext, rows []dto.SaleRow) (int, error)

	// ListSales returns every stored sales record, newest first.
	ListSales(ctx context.Context, caller domain.AuthContext) ([]domain.SaleRecord, error)

	// RollupByBranch aggregates category totals per branch.
	RollupByBranch(ctx context.Context, caller domain.AuthContext) ([]domain.SalesRollup, error)

	// RollupBySalesperson aggregates category totals per salesperson name.
	RollupBySalesperson(ctx context.Context, caller domain.AuthContext) ([]domain.SalesRollup, error)

	// ClearSales deletes every sales record and returns the count. Admin
	// only.
	ClearSales(ctx context.Context, caller domain.AuthContext) (int64, error)
}
