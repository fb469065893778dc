package domain

import "github.com/shopspring/decimal"

// Customer represents a customer of the retailer together with its debt
// ledger: the running gold-weight balance (grams, fixed 21k fineness) and the
// running cash balance. Both balances stay non-negative; the settlement engine
// rejects any collection that would overdraw either one.
type Customer struct {
	CustomerID    string           `json:"customerID"` // Primary Key (UUID)
	Name          string           `json:"name"`
	Phone         string           `json:"phone"` // Unique across the tenant
	Region        string           `json:"region"`
	GoldDebt      decimal.Decimal  `json:"goldDebt"` // grams
	CashDebt      decimal.Decimal  `json:"cashDebt"` // currency units
	CreditLimit   *decimal.Decimal `json:"creditLimit,omitempty"`
	SalesPersonID string           `json:"salesPersonID"` // FK -> users.user_id
	AuditFields
}

// CustomerDetails is the read-side projection of a Customer enriched with the
// owning salesperson's display name, joined at read time.
type CustomerDetails struct {
	Customer
	SalesPersonName string `json:"salesPersonName"`
}
