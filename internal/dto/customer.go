package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// CreateCustomerRequest defines the payload for registering a customer.
// SalesPersonID is required for admins and ignored for salespeople, who always
// own the customers they create.
type CreateCustomerRequest struct {
	Name          string           `json:"name" binding:"required"`
	Phone         string           `json:"phone" binding:"required"`
	Region        string           `json:"region" binding:"required"`
	GoldDebt      decimal.Decimal  `json:"goldDebt" binding:"nonneg"`
	CashDebt      decimal.Decimal  `json:"cashDebt" binding:"nonneg"`
	CreditLimit   *decimal.Decimal `json:"creditLimit,omitempty" binding:"omitempty,nonneg"`
	SalesPersonID string           `json:"salesPersonId,omitempty"`
}

// UpdateCustomerRequest carries partial customer updates. Nil fields are left
// untouched.
type UpdateCustomerRequest struct {
	Name          *string          `json:"name,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Region        *string          `json:"region,omitempty"`
	GoldDebt      *decimal.Decimal `json:"goldDebt,omitempty" binding:"omitempty,nonneg"`
	CashDebt      *decimal.Decimal `json:"cashDebt,omitempty" binding:"omitempty,nonneg"`
	CreditLimit   *decimal.Decimal `json:"creditLimit,omitempty" binding:"omitempty,nonneg"`
	SalesPersonID *string          `json:"salesPersonId,omitempty"`
}

// ListCustomersParams filters the customer listing.
type ListCustomersParams struct {
	Region        string `form:"region"`
	SalesPersonID string `form:"salesPersonId"`
	SearchTerm    string `form:"search"`
}

// CustomerResponse is the outward representation of a customer.
type CustomerResponse struct {
	CustomerID      string           `json:"customerId"`
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	Region          string           `json:"region"`
	GoldDebt        decimal.Decimal  `json:"goldDebt"`
	CashDebt        decimal.Decimal  `json:"cashDebt"`
	CreditLimit     *decimal.Decimal `json:"creditLimit,omitempty"`
	SalesPersonID   string           `json:"salesPersonId"`
	SalesPersonName string           `json:"salesPersonName,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain customer with details to its response
// form.
func ToCustomerResponse(c domain.CustomerDetails) CustomerResponse {
	return CustomerResponse{
		CustomerID:      c.CustomerID,
		Name:            c.Name,
		Phone:           c.Phone,
		Region:          c.Region,
		GoldDebt:        c.GoldDebt,
		CashDebt:        c.CashDebt,
		CreditLimit:     c.CreditLimit,
		SalesPersonID:   c.SalesPersonID,
		SalesPersonName: c.SalesPersonName,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
}

// ToCustomerResponses converts a slice of customer details.
func ToCustomerResponses(customers []domain.CustomerDetails) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, ToCustomerResponse(c))
	}
	return resp
}

// CustomerRow is one row of a bulk customer import.
type CustomerRow struct {
	Name          string           `json:"name" binding:"required"`
	Phone         string           `json:"phone" binding:"required"`
	Region        string           `json:"region" binding:"required"`
	GoldDebt      decimal.Decimal  `json:"goldDebt" binding:"nonneg"`
	CashDebt      decimal.Decimal  `json:"cashDebt" binding:"nonneg"`
	CreditLimit   *decimal.Decimal `json:"creditLimit,omitempty" binding:"omitempty,nonneg"`
	SalesPersonID string           `json:"salesPersonId,omitempty"`
}

// ImportCustomersRequest is the bulk insert payload.
type ImportCustomersRequest struct {
	Customers []CustomerRow `json:"customers" binding:"required,min=1,dive"`
}

// RowError reports a single failed row of a bulk operation.
type RowError struct {
	Row     int    `json:"row"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk insert. Rows fail independently.
type ImportResult struct {
	Success int        `json:"success"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

// UpsertResult summarizes a bulk upsert keyed by phone number.
type UpsertResult struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

// PurgeResult reports counts after the admin-only full wipe.
type PurgeResult struct {
	DeletedCustomers   int64 `json:"deletedCustomers"`
	DeletedCollections int64 `json:"deletedCollections"`
}
