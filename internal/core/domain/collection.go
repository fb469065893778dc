package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection is a settlement transaction against a customer's debt ledger.
// SalesPersonID is captured from the customer's owner at insert time, not the
// caller, so history keeps its attribution even if the customer is reassigned
// later. A Collection is immutable once created; deleting it reverses its
// effect on the customer balances.
type Collection struct {
	CollectionID   string          `json:"collectionID"` // Primary Key (UUID)
	CustomerID     string          `json:"customerID"`   // FK -> customers.customer_id
	SalesPersonID  string          `json:"salesPersonID"`
	GoldAmount     decimal.Decimal `json:"goldAmount"` // grams
	CashAmount     decimal.Decimal `json:"cashAmount"` // currency units
	Notes          string          `json:"notes,omitempty"`
	CollectionDate time.Time       `json:"collectionDate"`
	AuditFields
}

// CollectionDetails enriches a Collection with the referenced customer's
// display fields (and, for admin views, the salesperson's name). These are
// joins performed at read time, never stored denormalizations.
type CollectionDetails struct {
	Collection
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	SalesPersonName string `json:"salesPersonName,omitempty"`
}
