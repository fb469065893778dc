package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/utils"
)

// reportingService implements the ReportingService port as pure folds over
// the customer and collection rows.
type reportingService struct {
	BaseService
	customerRepo   portsrepo.CustomerReader
	collectionRepo portsrepo.CollectionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(customerRepo portsrepo.CustomerReader, collectionRepo portsrepo.CollectionReader) portssvc.ReportingService {
	return &reportingService{customerRepo: customerRepo, collectionRepo: collectionRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) DashboardStats(ctx context.Context, caller domain.AuthContext) (domain.DashboardStats, error) {
	if err := s.RequireRole(ctx, caller); err != nil {
		return domain.DashboardStats{}, err
	}

	filter := portsrepo.CustomerListFilter{}
	if caller.IsSalesperson() {
		filter.SalesPersonID = caller.UserID
	}

	customers, err := s.customerRepo.FindCustomers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers for dashboard")
		return domain.DashboardStats{}, fmt.Errorf("failed to load customers: %w", err)
	}

	var collections []domain.Collection
	if caller.IsSalesperson() {
		collections, err = s.collectionRepo.FindCollectionsBySalesperson(ctx, caller.UserID)
	} else {
		collections, err = s.collectionRepo.FindAllCollections(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load collections for dashboard")
		return domain.DashboardStats{}, fmt.Errorf("failed to load collections: %w", err)
	}

	gold, cash := sumDebts(customers)
	stats := domain.DashboardStats{
		TotalCustomers: len(customers),
		TotalGoldDebt:  gold,
		TotalCashDebt:  cash,
	}

	weekStart := utils.StartOfWeek(time.Now())
	for _, c := range collections {
		if c.CollectionDate.Before(weekStart) {
			continue
		}
		stats.WeekGoldCollected = stats.WeekGoldCollected.Add(c.GoldAmount)
		stats.WeekCashCollected = stats.WeekCashCollected.Add(c.CashAmount)
	}

	return stats, nil
}
