package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo   *MockCustomerRepository
	mockCollectionRepo *MockCollectionRepository
	service            portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockCollectionRepo = new(MockCollectionRepository)
	suite.service = services.NewReportingService(suite.mockCustomerRepo, suite.mockCollectionRepo)
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_AdminSeesWholeBook() {
	ctx := context.Background()
	now := time.Now()

	customers := []domain.Customer{
		{CustomerID: "c-1", GoldDebt: decimal.NewFromInt(10), CashDebt: decimal.NewFromInt(100)},
		{CustomerID: "c-2", GoldDebt: decimal.NewFromInt(20), CashDebt: decimal.NewFromInt(200)},
	}
	collections := []domain.Collection{
		{CollectionID: "col-1", GoldAmount: decimal.NewFromInt(4), CashAmount: decimal.NewFromInt(40), CollectionDate: now},
		{CollectionID: "col-2", GoldAmount: decimal.NewFromInt(6), CashAmount: decimal.NewFromInt(60), CollectionDate: now.AddDate(0, 0, -30)},
	}
	suite.mockCustomerRepo.On("FindCustomers", ctx, portsrepo.CustomerListFilter{}).Return(customers, nil).Once()
	suite.mockCollectionRepo.On("FindAllCollections", ctx).Return(collections, nil).Once()

	stats, err := suite.service.DashboardStats(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Equal(2, stats.TotalCustomers)
	suite.True(stats.TotalGoldDebt.Equal(decimal.NewFromInt(30)))
	suite.True(stats.TotalCashDebt.Equal(decimal.NewFromInt(300)))
	// Only the current week's collection counts toward the weekly figures.
	suite.True(stats.WeekGoldCollected.Equal(decimal.NewFromInt(4)))
	suite.True(stats.WeekCashCollected.Equal(decimal.NewFromInt(40)))
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_SalespersonScopedToOwnBook() {
	ctx := context.Background()
	caller := salespersonCaller()

	suite.mockCustomerRepo.On("FindCustomers", ctx, portsrepo.CustomerListFilter{
		SalesPersonID: caller.UserID,
	}).Return([]domain.Customer{}, nil).Once()
	suite.mockCollectionRepo.On("FindCollectionsBySalesperson", ctx, caller.UserID).
		Return([]domain.Collection{}, nil).Once()

	stats, err := suite.service.DashboardStats(ctx, caller)

	suite.Require().NoError(err)
	suite.Equal(0, stats.TotalCustomers)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockCollectionRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_RequiresRole() {
	ctx := context.Background()

	_, err := suite.service.DashboardStats(ctx, domain.AuthContext{UserID: "u-1"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
