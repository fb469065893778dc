package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// UpsertOverdueRequest replaces a customer's aging-bucket snapshot wholesale.
// Buckets omitted from the payload are written as zero, not left in place.
type UpsertOverdueRequest struct {
	CustomerID         string          `json:"customerId" binding:"required"`
	GoldOverdue25      decimal.Decimal `json:"goldOverdue25" binding:"nonneg"`
	GoldOverdue40      decimal.Decimal `json:"goldOverdue40" binding:"nonneg"`
	GoldOverdue60      decimal.Decimal `json:"goldOverdue60" binding:"nonneg"`
	GoldOverdue90      decimal.Decimal `json:"goldOverdue90" binding:"nonneg"`
	GoldOverdue90Plus  decimal.Decimal `json:"goldOverdue90Plus" binding:"nonneg"`
	CashOverdue25      decimal.Decimal `json:"cashOverdue25" binding:"nonneg"`
	CashOverdue40      decimal.Decimal `json:"cashOverdue40" binding:"nonneg"`
	CashOverdue60      decimal.Decimal `json:"cashOverdue60" binding:"nonneg"`
	CashOverdue90      decimal.Decimal `json:"cashOverdue90" binding:"nonneg"`
	CashOverdue90Plus  decimal.Decimal `json:"cashOverdue90Plus" binding:"nonneg"`
}

// ImportOverdueRequest is the bulk upsert payload for aging snapshots.
type ImportOverdueRequest struct {
	Statuses []UpsertOverdueRequest `json:"statuses" binding:"required,min=1,dive"`
}

// OverdueStatusResponse is the outward representation of an aging snapshot.
// Legacy rows imported before amounts were tracked report zero buckets.
type OverdueStatusResponse struct {
	StatusID          string          `json:"statusId"`
	CustomerID        string          `json:"customerId"`
	CustomerName      string          `json:"customerName,omitempty"`
	CustomerPhone     string          `json:"customerPhone,omitempty"`
	Region            string          `json:"region,omitempty"`
	GoldOverdue25     decimal.Decimal `json:"goldOverdue25"`
	GoldOverdue40     decimal.Decimal `json:"goldOverdue40"`
	GoldOverdue60     decimal.Decimal `json:"goldOverdue60"`
	GoldOverdue90     decimal.Decimal `json:"goldOverdue90"`
	GoldOverdue90Plus decimal.Decimal `json:"goldOverdue90Plus"`
	CashOverdue25     decimal.Decimal `json:"cashOverdue25"`
	CashOverdue40     decimal.Decimal `json:"cashOverdue40"`
	CashOverdue60     decimal.Decimal `json:"cashOverdue60"`
	CashOverdue90     decimal.Decimal `json:"cashOverdue90"`
	CashOverdue90Plus decimal.Decimal `json:"cashOverdue90Plus"`
	LastUpdated       time.Time       `json:"lastUpdated"`
}

func bucket(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

// ToOverdueStatusResponse converts an aging snapshot to its response form.
func ToOverdueStatusResponse(s domain.OverdueStatusDetails) OverdueStatusResponse {
	return OverdueStatusResponse{
		StatusID:          s.StatusID,
		CustomerID:        s.CustomerID,
		CustomerName:      s.CustomerName,
		CustomerPhone:     s.CustomerPhone,
		Region:            s.CustomerRegion,
		GoldOverdue25:     bucket(s.GoldOverdue25),
		GoldOverdue40:     bucket(s.GoldOverdue40),
		GoldOverdue60:     bucket(s.GoldOverdue60),
		GoldOverdue90:     bucket(s.GoldOverdue90),
		GoldOverdue90Plus: bucket(s.GoldOverdue90Plus),
		CashOverdue25:     bucket(s.CashOverdue25),
		CashOverdue40:     bucket(s.CashOverdue40),
		CashOverdue60:     bucket(s.CashOverdue60),
		CashOverdue90:     bucket(s.CashOverdue90),
		CashOverdue90Plus: bucket(s.CashOverdue90Plus),
		LastUpdated:       s.LastUpdated,
	}
}

// ToOverdueStatusResponses converts a slice of aging snapshots.
func ToOverdueStatusResponses(statuses []domain.OverdueStatusDetails) []OverdueStatusResponse {
	resp := make([]OverdueStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		resp = append(resp, ToOverdueStatusResponse(s))
	}
	return resp
}

// NormalizeResult reports the legacy-row cleanup outcome.
type NormalizeResult struct {
	Total int64 `json:"total"`
	Fixed int64 `json:"fixed"`
}
