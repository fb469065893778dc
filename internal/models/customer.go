package models

import "github.com/shopspring/decimal"

// Customer represents a row of the customers table.
type Customer struct {
	CustomerID    string           `db:"customer_id"`
	Name          string           `db:"name"`
	Phone         string           `db:"phone"`
	Region        string           `db:"region"`
	GoldDebt      decimal.Decimal  `db:"gold_debt"`
	CashDebt      decimal.Decimal  `db:"cash_debt"`
	CreditLimit   *decimal.Decimal `db:"credit_limit"`
	SalesPersonID string           `db:"sales_person_id"`
	AuditFields
}
