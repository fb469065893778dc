package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// saleService implements the SaleService port.
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade) portssvc.SaleService {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleService = (*saleService)(nil)

func (s *saleService) ImportSales(ctx context.Context, caller domain.AuthContext, rows []dto.SaleRow) (int, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return 0, err
	}

	now := time.Now()
	sales := make([]domain.SaleRecord, 0, len(rows))
	for _, row := range rows {
		saleDate := row.SaleDate
		if saleDate.IsZero() {
			saleDate = now
		}
		sales = append(sales, domain.SaleRecord{
			SaleID:      uuid.NewString(),
			Branch:      row.Branch,
			Salesperson: row.Salesperson,
			Gold18Star:  row.Gold18Star,
			Gold18Plain: row.Gold18Plain,
			Gold21Plain: row.Gold21Plain,
			Gold21Star:  row.Gold21Star,
			TotalSales:  row.TotalSales,
			SaleDate:    saleDate,
			ImportedBy:  caller.UserID,
		})
	}

	if err := s.saleRepo.SaveSales(ctx, sales); err != nil {
		s.LogError(ctx, err, "Failed to import sales", slog.Int("rows", len(sales)))
		return 0, fmt.Errorf("failed to import sales: %w", err)
	}

	s.LogInfo(ctx, "Sales imported", slog.Int("rows", len(sales)))
	return len(sales), nil
}

func (s *saleService) ListSales(ctx context.Context, caller domain.AuthContext) ([]domain.SaleRecord, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.FindAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (s *saleService) RollupByBranch(ctx context.Context, caller domain.AuthContext) ([]domain.SalesRollup, error) {
	return s.rollup(ctx, caller, func(r domain.SaleRecord) string { return r.Branch })
}

func (s *saleService) RollupBySalesperson(ctx context.Context, caller domain.AuthContext) ([]domain.SalesRollup, error) {
	return s.rollup(ctx, caller, func(r domain.SaleRecord) string { return r.Salesperson })
}

func (s *saleService) rollup(ctx context.Context, caller domain.AuthContext, keyFn func(domain.SaleRecord) string) ([]domain.SalesRollup, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.FindAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for rollup")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	grouped := make(map[string]domain.SalesRollup)
	for _, sale := range sales {
		key := keyFn(sale)
		agg := grouped[key]
		agg.Key = key
		agg.Gold18Star = agg.Gold18Star.Add(sale.Gold18Star)
		agg.Gold18Plain = agg.Gold18Plain.Add(sale.Gold18Plain)
		agg.Gold21Plain = agg.Gold21Plain.Add(sale.Gold21Plain)
		agg.Gold21Star = agg.Gold21Star.Add(sale.Gold21Star)
		agg.TotalSales = agg.TotalSales.Add(sale.TotalSales)
		grouped[key] = agg
	}

	rollups := make([]domain.SalesRollup, 0, len(grouped))
	for _, agg := range grouped {
		rollups = append(rollups, agg)
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].Key < rollups[j].Key })
	return rollups, nil
}

func (s *saleService) ClearSales(ctx context.Context, caller domain.AuthContext) (int64, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return 0, err
	}

	deleted, err := s.saleRepo.DeleteAllSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear sales")
		return 0, fmt.Errorf("failed to clear sales: %w", err)
	}

	s.LogInfo(ctx, "Sales cleared", slog.Int64("deleted", deleted))
	return deleted, nil
}
