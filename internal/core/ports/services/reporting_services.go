package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// ReportingService assembles the role-scoped dashboard.
type ReportingService interface {
	// DashboardStats summarizes the caller's visible book: customer count,
	// outstanding debt totals and this week's collected amounts.
	DashboardStats(ctx context.Context, caller domain.AuthContext) (domain.DashboardStats, error)
}
