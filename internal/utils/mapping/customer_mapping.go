package mapping

import (
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		Name:          d.Name,
		Phone:         d.Phone,
		Region:        d.Region,
		GoldDebt:      d.GoldDebt,
		CashDebt:      d.CashDebt,
		CreditLimit:   d.CreditLimit,
		SalesPersonID: d.SalesPersonID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		Name:          m.Name,
		Phone:         m.Phone,
		Region:        m.Region,
		GoldDebt:      m.GoldDebt,
		CashDebt:      m.CashDebt,
		CreditLimit:   m.CreditLimit,
		SalesPersonID: m.SalesPersonID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
