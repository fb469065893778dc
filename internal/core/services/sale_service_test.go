package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/core/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo *MockSaleRepository
	service      portssvc.SaleService
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo)
}

func (suite *SaleServiceTestSuite) TestImportSales_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.ImportSales(ctx, salespersonCaller(), []dto.SaleRow{{Branch: "Main"}})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SaleServiceTestSuite) TestImportSales_StampsRowsAndDefaultsDate() {
	ctx := context.Background()
	caller := adminCaller()
	saleDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.mockSaleRepo.On("SaveSales", ctx, mock.MatchedBy(func(sales []domain.SaleRecord) bool {
		if len(sales) != 2 {
			return false
		}
		dated, undated := sales[0], sales[1]
		return dated.SaleDate.Equal(saleDate) &&
			dated.ImportedBy == caller.UserID &&
			dated.SaleID != "" &&
			// A zero date falls back to the import time.
			!undated.SaleDate.IsZero()
	})).Return(nil).Once()

	count, err := suite.service.ImportSales(ctx, caller, []dto.SaleRow{
		{Branch: "Main", Salesperson: "Sami", TotalSales: decimal.NewFromInt(1000), SaleDate: saleDate},
		{Branch: "Mall", Salesperson: "Fahad", TotalSales: decimal.NewFromInt(2000)},
	})

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRollupByBranch_GroupsAndSorts() {
	ctx := context.Background()

	sales := []domain.SaleRecord{
		{Branch: "Mall", Salesperson: "Sami", Gold18Star: decimal.NewFromInt(5), TotalSales: decimal.NewFromInt(100)},
		{Branch: "Airport", Salesperson: "Sami", Gold18Star: decimal.NewFromInt(2), TotalSales: decimal.NewFromInt(50)},
		{Branch: "Mall", Salesperson: "Fahad", Gold18Star: decimal.NewFromInt(3), TotalSales: decimal.NewFromInt(70)},
	}
	suite.mockSaleRepo.On("FindAllSales", ctx).Return(sales, nil).Once()

	rollups, err := suite.service.RollupByBranch(ctx, salespersonCaller())

	suite.Require().NoError(err)
	suite.Require().Len(rollups, 2)
	suite.Equal("Airport", rollups[0].Key)
	suite.Equal("Mall", rollups[1].Key)
	suite.True(rollups[1].Gold18Star.Equal(decimal.NewFromInt(8)))
	suite.True(rollups[1].TotalSales.Equal(decimal.NewFromInt(170)))
}

func (suite *SaleServiceTestSuite) TestRollupBySalesperson_GroupsByLabel() {
	ctx := context.Background()

	sales := []domain.SaleRecord{
		{Branch: "Mall", Salesperson: "Sami", TotalSales: decimal.NewFromInt(100)},
		{Branch: "Airport", Salesperson: "Sami", TotalSales: decimal.NewFromInt(50)},
	}
	suite.mockSaleRepo.On("FindAllSales", ctx).Return(sales, nil).Once()

	rollups, err := suite.service.RollupBySalesperson(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Require().Len(rollups, 1)
	suite.Equal("Sami", rollups[0].Key)
	suite.True(rollups[0].TotalSales.Equal(decimal.NewFromInt(150)))
}

func (suite *SaleServiceTestSuite) TestClearSales_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.ClearSales(ctx, salespersonCaller())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "DeleteAllSales", mock.Anything)
}

func (suite *SaleServiceTestSuite) TestClearSales_ReportsDeleted() {
	ctx := context.Background()

	suite.mockSaleRepo.On("DeleteAllSales", ctx).Return(int64(9), nil).Once()

	deleted, err := suite.service.ClearSales(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Equal(int64(9), deleted)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
