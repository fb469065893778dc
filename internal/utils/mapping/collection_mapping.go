package mapping

import (
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/models"
)

// ToModelCollection converts a domain Collection to a model Collection
func ToModelCollection(d domain.Collection) models.Collection {
	return models.Collection{
		CollectionID:   d.CollectionID,
		CustomerID:     d.CustomerID,
		SalesPersonID:  d.SalesPersonID,
		GoldAmount:     d.GoldAmount,
		CashAmount:     d.CashAmount,
		Notes:          d.Notes,
		CollectionDate: d.CollectionDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCollection converts a model Collection to a domain Collection
func ToDomainCollection(m models.Collection) domain.Collection {
	return domain.Collection{
		CollectionID:   m.CollectionID,
		CustomerID:     m.CustomerID,
		SalesPersonID:  m.SalesPersonID,
		GoldAmount:     m.GoldAmount,
		CashAmount:     m.CashAmount,
		Notes:          m.Notes,
		CollectionDate: m.CollectionDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCollectionSlice converts a slice of model Collections to domain Collections
func ToDomainCollectionSlice(ms []models.Collection) []domain.Collection {
	ds := make([]domain.Collection, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCollection(m)
	}
	return ds
}
