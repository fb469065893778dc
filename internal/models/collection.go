package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection represents a row of the collections table.
type Collection struct {
	CollectionID   string          `db:"collection_id"`
	CustomerID     string          `db:"customer_id"`
	SalesPersonID  string          `db:"sales_person_id"`
	GoldAmount     decimal.Decimal `db:"gold_amount"`
	CashAmount     decimal.Decimal `db:"cash_amount"`
	Notes          string          `db:"notes"`
	CollectionDate time.Time       `db:"collection_date"`
	AuditFields
}
