package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// OverdueService manages imported aging-bucket snapshots.
type OverdueService interface {
	// UpsertStatus replaces a customer's snapshot wholesale. Admin only.
	UpsertStatus(ctx context.Context, caller domain.AuthContext, req dto.UpsertOverdueRequest) (*domain.OverdueStatusDetails, error)

	// ImportStatuses bulk-upserts snapshots with per-row failure isolation.
	// Admin only.
	ImportStatuses(ctx context.Context, caller domain.AuthContext, rows []dto.UpsertOverdueRequest) (dto.ImportResult, error)

	// GetStatusByCustomer returns one customer's snapshot, or nil when none
	// has been imported.
	GetStatusByCustomer(ctx context.Context, caller domain.AuthContext, customerID string) (*domain.OverdueStatusDetails, error)

	// ListStatuses returns all snapshots enriched with customer details.
	ListStatuses(ctx context.Context, caller domain.AuthContext) ([]domain.OverdueStatusDetails, error)

	// NormalizeLegacy rewrites rows imported before bucket amounts were
	// tracked so every bucket holds a number. Safe to run repeatedly.
	// Admin only.
	NormalizeLegacy(ctx context.Context, caller domain.AuthContext) (dto.NormalizeResult, error)
}
