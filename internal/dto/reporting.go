package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// DashboardStatsResponse is the role-scoped dashboard summary. Salespeople see
// only their own book; admins see the whole portfolio.
type DashboardStatsResponse struct {
	TotalCustomers    int             `json:"totalCustomers"`
	TotalGoldDebt     decimal.Decimal `json:"totalGoldDebt"`
	TotalCashDebt     decimal.Decimal `json:"totalCashDebt"`
	WeekGoldCollected decimal.Decimal `json:"weekGoldCollected"`
	WeekCashCollected decimal.Decimal `json:"weekCashCollected"`
}

// ToDashboardStatsResponse converts domain dashboard stats.
func ToDashboardStatsResponse(s domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalCustomers:    s.TotalCustomers,
		TotalGoldDebt:     s.TotalGoldDebt,
		TotalCashDebt:     s.TotalCashDebt,
		WeekGoldCollected: s.WeekGoldCollected,
		WeekCashCollected: s.WeekCashCollected,
	}
}
