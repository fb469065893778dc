package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverdueStatus is the per-customer snapshot of overdue amounts across the
// five aging buckets (0-25, 0-40, 0-60, 0-90, 90+ days), one gold/cash pair
// per bucket. At most one live row exists per customer; updates replace the
// whole snapshot, never merge individual buckets.
//
// Nil bucket values mark rows loaded from the legacy system where the bucket
// was a boolean flag of unknown magnitude; NormalizeLegacy coerces them to 0.
type OverdueStatus struct {
	StatusID   string `json:"statusID"`   // Primary Key (UUID)
	CustomerID string `json:"customerID"` // FK -> customers.customer_id, unique

	GoldOverdue25     *decimal.Decimal `json:"goldOverdue25"`
	CashOverdue25     *decimal.Decimal `json:"cashOverdue25"`
	GoldOverdue40     *decimal.Decimal `json:"goldOverdue40"`
	CashOverdue40     *decimal.Decimal `json:"cashOverdue40"`
	GoldOverdue60     *decimal.Decimal `json:"goldOverdue60"`
	CashOverdue60     *decimal.Decimal `json:"cashOverdue60"`
	GoldOverdue90     *decimal.Decimal `json:"goldOverdue90"`
	CashOverdue90     *decimal.Decimal `json:"cashOverdue90"`
	GoldOverdue90Plus *decimal.Decimal `json:"goldOverdue90Plus"`
	CashOverdue90Plus *decimal.Decimal `json:"cashOverdue90Plus"`

	LastUpdated time.Time `json:"lastUpdated"`
	ImportedBy  string    `json:"importedBy"` // UserID Reference
}

// OverdueStatusDetails enriches an OverdueStatus with the customer's display
// fields, joined at read time.
type OverdueStatusDetails struct {
	OverdueStatus
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	CustomerRegion string `json:"customerRegion"`
}
