package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// SaleRow is one row of a daily sales import.
type SaleRow struct {
	Branch      string          `json:"branch" binding:"required"`
	Salesperson string          `json:"salesperson" binding:"required"`
	Gold18Star  decimal.Decimal `json:"gold18Star" binding:"nonneg"`
	Gold18Plain decimal.Decimal `json:"gold18Plain" binding:"nonneg"`
	Gold21Plain decimal.Decimal `json:"gold21Plain" binding:"nonneg"`
	Gold21Star  decimal.Decimal `json:"gold21Star" binding:"nonneg"`
	TotalSales  decimal.Decimal `json:"totalSales" binding:"nonneg"`
	SaleDate    time.Time       `json:"saleDate" binding:"required"`
}

// ImportSalesRequest is the bulk sales-import payload.
type ImportSalesRequest struct {
	Sales []SaleRow `json:"sales" binding:"required,min=1,dive"`
}

// ImportSalesResponse reports an accepted sales import.
type ImportSalesResponse struct {
	Count int `json:"count"`
}

// SaleResponse is the outward representation of a sales record.
type SaleResponse struct {
	SaleID      string          `json:"saleId"`
	Branch      string          `json:"branch"`
	Salesperson string          `json:"salesperson"`
	Gold18Star  decimal.Decimal `json:"gold18Star"`
	Gold18Plain decimal.Decimal `json:"gold18Plain"`
	Gold21Plain decimal.Decimal `json:"gold21Plain"`
	Gold21Star  decimal.Decimal `json:"gold21Star"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	SaleDate    time.Time       `json:"saleDate"`
}

// ToSaleResponse converts a domain sales record to its response form.
func ToSaleResponse(s domain.SaleRecord) SaleResponse {
	return SaleResponse{
		SaleID:      s.SaleID,
		Branch:      s.Branch,
		Salesperson: s.Salesperson,
		Gold18Star:  s.Gold18Star,
		Gold18Plain: s.Gold18Plain,
		Gold21Plain: s.Gold21Plain,
		Gold21Star:  s.Gold21Star,
		TotalSales:  s.TotalSales,
		SaleDate:    s.SaleDate,
	}
}

// ToSaleResponses converts a slice of sales records.
func ToSaleResponses(sales []domain.SaleRecord) []SaleResponse {
	resp := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		resp = append(resp, ToSaleResponse(s))
	}
	return resp
}

// SalesRollupResponse aggregates sales by branch or salesperson.
type SalesRollupResponse struct {
	Key         string          `json:"key"`
	Gold18Star  decimal.Decimal `json:"gold18Star"`
	Gold18Plain decimal.Decimal `json:"gold18Plain"`
	Gold21Plain decimal.Decimal `json:"gold21Plain"`
	Gold21Star  decimal.Decimal `json:"gold21Star"`
	TotalSales  decimal.Decimal `json:"totalSales"`
}

// ToSalesRollupResponses converts rollup lines.
func ToSalesRollupResponses(rollups []domain.SalesRollup) []SalesRollupResponse {
	resp := make([]SalesRollupResponse, 0, len(rollups))
	for _, r := range rollups {
		resp = append(resp, SalesRollupResponse{
			Key:         r.Key,
			Gold18Star:  r.Gold18Star,
			Gold18Plain: r.Gold18Plain,
			Gold21Plain: r.Gold21Plain,
			Gold21Star:  r.Gold21Star,
			TotalSales:  r.TotalSales,
		})
	}
	return resp
}

// ClearSalesResponse reports the admin-only sales wipe.
type ClearSalesResponse struct {
	Deleted int64 `json:"deleted"`
}
