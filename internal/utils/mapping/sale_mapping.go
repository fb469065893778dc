package mapping

import (
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/models"
)

// ToModelSaleRecord converts a domain SaleRecord to a model SaleRecord
func ToModelSaleRecord(d domain.SaleRecord) models.SaleRecord {
	return models.SaleRecord{
		SaleID:      d.SaleID,
		Branch:      d.Branch,
		Salesperson: d.Salesperson,
		Gold18Star:  d.Gold18Star,
		Gold18Plain: d.Gold18Plain,
		Gold21Plain: d.Gold21Plain,
		Gold21Star:  d.Gold21Star,
		TotalSales:  d.TotalSales,
		SaleDate:    d.SaleDate,
		ImportedBy:  d.ImportedBy,
	}
}

// ToDomainSaleRecord converts a model SaleRecord to a domain SaleRecord
func ToDomainSaleRecord(m models.SaleRecord) domain.SaleRecord {
	return domain.SaleRecord{
		SaleID:      m.SaleID,
		Branch:      m.Branch,
		Salesperson: m.Salesperson,
		Gold18Star:  m.Gold18Star,
		Gold18Plain: m.Gold18Plain,
		Gold21Plain: m.Gold21Plain,
		Gold21Star:  m.Gold21Star,
		TotalSales:  m.TotalSales,
		SaleDate:    m.SaleDate,
		ImportedBy:  m.ImportedBy,
	}
}

// ToDomainSaleRecordSlice converts a slice of model SaleRecords to domain SaleRecords
func ToDomainSaleRecordSlice(ms []models.SaleRecord) []domain.SaleRecord {
	ds := make([]domain.SaleRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleRecord(m)
	}
	return ds
}
