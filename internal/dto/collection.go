package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// AddCollectionRequest records a settlement against a customer's balance.
// At least one of the amounts must be positive; neither may exceed the
// customer's matching outstanding debt.
type AddCollectionRequest struct {
	CustomerID string          `json:"customerId" binding:"required"`
	GoldAmount decimal.Decimal `json:"goldAmount" binding:"nonneg"`
	CashAmount decimal.Decimal `json:"cashAmount" binding:"nonneg"`
	Notes      string          `json:"notes,omitempty"`
}

// CollectionResponse is the outward representation of a collection.
type CollectionResponse struct {
	CollectionID    string          `json:"collectionId"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	SalesPersonID   string          `json:"salesPersonId"`
	SalesPersonName string          `json:"salesPersonName,omitempty"`
	GoldAmount      decimal.Decimal `json:"goldAmount"`
	CashAmount      decimal.Decimal `json:"cashAmount"`
	Notes           string          `json:"notes,omitempty"`
	CollectionDate  time.Time       `json:"collectionDate"`
}

// ToCollectionResponse converts collection details to their response form.
func ToCollectionResponse(c domain.CollectionDetails) CollectionResponse {
	return CollectionResponse{
		CollectionID:    c.CollectionID,
		CustomerID:      c.CustomerID,
		CustomerName:    c.CustomerName,
		CustomerPhone:   c.CustomerPhone,
		SalesPersonID:   c.SalesPersonID,
		SalesPersonName: c.SalesPersonName,
		GoldAmount:      c.GoldAmount,
		CashAmount:      c.CashAmount,
		Notes:           c.Notes,
		CollectionDate:  c.CollectionDate,
	}
}

// ToCollectionResponses converts a slice of collection details.
func ToCollectionResponses(collections []domain.CollectionDetails) []CollectionResponse {
	resp := make([]CollectionResponse, 0, len(collections))
	for _, c := range collections {
		resp = append(resp, ToCollectionResponse(c))
	}
	return resp
}

// CollectionWindowResponse aggregates collections over a time window.
type CollectionWindowResponse struct {
	Gold  decimal.Decimal `json:"gold"`
	Cash  decimal.Decimal `json:"cash"`
	Count int             `json:"count"`
}

// CollectionStatsResponse carries total, today and this-week aggregates.
type CollectionStatsResponse struct {
	Total CollectionWindowResponse `json:"total"`
	Today CollectionWindowResponse `json:"today"`
	Week  CollectionWindowResponse `json:"week"`
}

func toWindowResponse(w domain.CollectionWindow) CollectionWindowResponse {
	return CollectionWindowResponse{Gold: w.Gold, Cash: w.Cash, Count: w.Count}
}

// ToCollectionStatsResponse converts domain stats to their response form.
func ToCollectionStatsResponse(s domain.CollectionStats) CollectionStatsResponse {
	return CollectionStatsResponse{
		Total: toWindowResponse(s.Total),
		Today: toWindowResponse(s.Today),
		Week:  toWindowResponse(s.Week),
	}
}

// SalespersonStatsResponse is the per-salesperson aggregate line of the
// admin collection report.
type SalespersonStatsResponse struct {
	SalesPersonID   string                   `json:"salesPersonId"`
	SalesPersonName string                   `json:"salesPersonName"`
	Total           CollectionWindowResponse `json:"total"`
	Today           CollectionWindowResponse `json:"today"`
}

// ToSalespersonStatsResponses converts per-salesperson aggregates.
func ToSalespersonStatsResponses(stats []domain.SalespersonCollectionStats) []SalespersonStatsResponse {
	resp := make([]SalespersonStatsResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, SalespersonStatsResponse{
			SalesPersonID:   s.SalesPersonID,
			SalesPersonName: s.SalesPersonName,
			Total:           toWindowResponse(s.Total),
			Today:           toWindowResponse(s.Today),
		})
	}
	return resp
}
