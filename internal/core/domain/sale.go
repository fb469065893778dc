package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is a bulk-imported sales figure for a branch/salesperson pair.
// The salesperson here is a free-text label from the source sheet, not a
// Principal reference. Records are only ever bulk-inserted and bulk-cleared.
type SaleRecord struct {
	SaleID      string          `json:"saleID"` // Primary Key (UUID)
	Branch      string          `json:"branch"`
	Salesperson string          `json:"salesperson"`
	Gold18Star  decimal.Decimal `json:"gold18Star"`
	Gold18Plain decimal.Decimal `json:"gold18Plain"`
	Gold21Plain decimal.Decimal `json:"gold21Plain"`
	Gold21Star  decimal.Decimal `json:"gold21Star"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	SaleDate    time.Time       `json:"saleDate"`
	ImportedBy  string          `json:"importedBy"` // UserID Reference
}
