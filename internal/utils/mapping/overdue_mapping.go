package mapping

import (
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/models"
)

// ToModelOverdueStatus converts a domain OverdueStatus to a model OverdueStatus
func ToModelOverdueStatus(d domain.OverdueStatus) models.OverdueStatus {
	return models.OverdueStatus{
		StatusID:          d.StatusID,
		CustomerID:        d.CustomerID,
		GoldOverdue25:     d.GoldOverdue25,
		CashOverdue25:     d.CashOverdue25,
		GoldOverdue40:     d.GoldOverdue40,
		CashOverdue40:     d.CashOverdue40,
		GoldOverdue60:     d.GoldOverdue60,
		CashOverdue60:     d.CashOverdue60,
		GoldOverdue90:     d.GoldOverdue90,
		CashOverdue90:     d.CashOverdue90,
		GoldOverdue90Plus: d.GoldOverdue90Plus,
		CashOverdue90Plus: d.CashOverdue90Plus,
		LastUpdated:       d.LastUpdated,
		ImportedBy:        d.ImportedBy,
	}
}

// ToDomainOverdueStatus converts a model OverdueStatus to a domain OverdueStatus
func ToDomainOverdueStatus(m models.OverdueStatus) domain.OverdueStatus {
	return domain.OverdueStatus{
		StatusID:          m.StatusID,
		CustomerID:        m.CustomerID,
		GoldOverdue25:     m.GoldOverdue25,
		CashOverdue25:     m.CashOverdue25,
		GoldOverdue40:     m.GoldOverdue40,
		CashOverdue40:     m.CashOverdue40,
		GoldOverdue60:     m.GoldOverdue60,
		CashOverdue60:     m.CashOverdue60,
		GoldOverdue90:     m.GoldOverdue90,
		CashOverdue90:     m.CashOverdue90,
		GoldOverdue90Plus: m.GoldOverdue90Plus,
		CashOverdue90Plus: m.CashOverdue90Plus,
		LastUpdated:       m.LastUpdated,
		ImportedBy:        m.ImportedBy,
	}
}
