package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

func TestToOverdueStatusResponse_CarriesCustomerEnrichment(t *testing.T) {
	gold25 := decimal.NewFromInt(7)
	updated := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	details := domain.OverdueStatusDetails{
		OverdueStatus: domain.OverdueStatus{
			StatusID:      "st-1",
			CustomerID:    "cust-1",
			GoldOverdue25: &gold25,
			LastUpdated:   updated,
		},
		CustomerName:   "Abu Khalid",
		CustomerPhone:  "0501111111",
		CustomerRegion: "Riyadh",
	}

	resp := dto.ToOverdueStatusResponse(details)

	assert.Equal(t, "st-1", resp.StatusID)
	assert.Equal(t, "Abu Khalid", resp.CustomerName)
	assert.Equal(t, "0501111111", resp.CustomerPhone)
	assert.Equal(t, "Riyadh", resp.Region)
	assert.True(t, resp.GoldOverdue25.Equal(gold25))
	// Legacy rows carry nil buckets; the response reports them as zero.
	assert.True(t, resp.CashOverdue90Plus.IsZero())
	assert.Equal(t, updated, resp.LastUpdated)
}
