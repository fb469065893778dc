package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord represents a row of the sales table.
type SaleRecord struct {
	SaleID      string          `db:"sale_id"`
	Branch      string          `db:"branch"`
	Salesperson string          `db:"salesperson"`
	Gold18Star  decimal.Decimal `db:"gold_18_star"`
	Gold18Plain decimal.Decimal `db:"gold_18_plain"`
	Gold21Plain decimal.Decimal `db:"gold_21_plain"`
	Gold21Star  decimal.Decimal `db:"gold_21_star"`
	TotalSales  decimal.Decimal `db:"total_sales"`
	SaleDate    time.Time       `db:"sale_date"`
	ImportedBy  string          `db:"imported_by"`
}
