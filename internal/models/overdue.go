package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverdueStatus represents a row of the overdue_status table. Bucket columns
// are nullable: NULL marks values loaded from the legacy boolean-flag schema.
type OverdueStatus struct {
	StatusID   string `db:"status_id"`
	CustomerID string `db:"customer_id"`

	GoldOverdue25     *decimal.Decimal `db:"gold_overdue_25"`
	CashOverdue25     *decimal.Decimal `db:"cash_overdue_25"`
	GoldOverdue40     *decimal.Decimal `db:"gold_overdue_40"`
	CashOverdue40     *decimal.Decimal `db:"cash_overdue_40"`
	GoldOverdue60     *decimal.Decimal `db:"gold_overdue_60"`
	CashOverdue60     *decimal.Decimal `db:"cash_overdue_60"`
	GoldOverdue90     *decimal.Decimal `db:"gold_overdue_90"`
	CashOverdue90     *decimal.Decimal `db:"cash_overdue_90"`
	GoldOverdue90Plus *decimal.Decimal `db:"gold_overdue_90_plus"`
	CashOverdue90Plus *decimal.Decimal `db:"cash_overdue_90_plus"`

	LastUpdated time.Time `db:"last_updated"`
	ImportedBy  string    `db:"imported_by"`
}
