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

type CollectionServiceTestSuite struct {
	suite.Suite
	mockCollectionRepo   *MockCollectionRepository
	mockCustomerRepo     *MockCustomerRepository
	mockUserRepo         *MockUserRepository
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.CollectionService
}

func (suite *CollectionServiceTestSuite) SetupTest() {
	suite.mockCollectionRepo = new(MockCollectionRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.service = services.NewCollectionService(
		suite.mockCollectionRepo,
		suite.mockCustomerRepo,
		suite.mockUserRepo,
		suite.mockNotificationRepo,
	)
}

func (suite *CollectionServiceTestSuite) ownedCustomer(ownerID string) *domain.Customer {
	return &domain.Customer{
		CustomerID:    "cust-1",
		Name:          "Abu Khalid",
		Phone:         "0501234567",
		Region:        "Riyadh",
		GoldDebt:      decimal.NewFromInt(50),
		CashDebt:      decimal.NewFromInt(2000),
		SalesPersonID: ownerID,
	}
}

// --- AddCollection ---

func (suite *CollectionServiceTestSuite) TestAddCollection_Success() {
	ctx := context.Background()
	caller := salespersonCaller()
	customer := suite.ownedCustomer(caller.UserID)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockCollectionRepo.On("SaveCollection", ctx, mock.MatchedBy(func(c domain.Collection) bool {
		return c.CustomerID == "cust-1" &&
			c.SalesPersonID == caller.UserID &&
			c.GoldAmount.Equal(decimal.NewFromInt(10)) &&
			c.CashAmount.Equal(decimal.NewFromInt(500)) &&
			c.CreatedBy == caller.UserID
	})).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == caller.UserID && n.Type == domain.NotificationCollectionSuccess && n.Priority == domain.PriorityLow
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()

	details, err := suite.service.AddCollection(ctx, caller, dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(10),
		CashAmount: decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(details)
	suite.Equal("Abu Khalid", details.CustomerName)
	suite.Equal("Sami", details.SalesPersonName)
	suite.NotEmpty(details.CollectionID)
	suite.mockCollectionRepo.AssertExpectations(suite.T())
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestAddCollection_AttributedToOwnerNotCaller() {
	ctx := context.Background()
	caller := adminCaller()
	customer := suite.ownedCustomer("sp-9")

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockCollectionRepo.On("SaveCollection", ctx, mock.MatchedBy(func(c domain.Collection) bool {
		// Credit goes to the owning salesperson even when an admin records it.
		return c.SalesPersonID == "sp-9" && c.CreatedBy == caller.UserID
	})).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "sp-9").
		Return(&domain.User{UserID: "sp-9", Name: "Fahad"}, nil).Once()

	details, err := suite.service.AddCollection(ctx, caller, dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(5),
		CashAmount: decimal.Zero,
	})

	suite.Require().NoError(err)
	suite.Equal("sp-9", details.SalesPersonID)
	suite.mockCollectionRepo.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestAddCollection_RejectsBothZero() {
	ctx := context.Background()

	_, err := suite.service.AddCollection(ctx, salespersonCaller(), dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.Zero,
		CashAmount: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCollectionRepo.AssertNotCalled(suite.T(), "SaveCollection", mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestAddCollection_RejectsNegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.AddCollection(ctx, salespersonCaller(), dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(-1),
		CashAmount: decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CollectionServiceTestSuite) TestAddCollection_RejectsOverdraw() {
	ctx := context.Background()
	caller := salespersonCaller()
	customer := suite.ownedCustomer(caller.UserID)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Twice()

	// Gold exceeds the outstanding 50g.
	_, err := suite.service.AddCollection(ctx, caller, dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(51),
		CashAmount: decimal.Zero,
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Cash exceeds the outstanding 2000.
	_, err = suite.service.AddCollection(ctx, caller, dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.Zero,
		CashAmount: decimal.NewFromInt(2001),
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockCollectionRepo.AssertNotCalled(suite.T(), "SaveCollection", mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestAddCollection_ExactSettlementAllowed() {
	ctx := context.Background()
	caller := salespersonCaller()
	customer := suite.ownedCustomer(caller.UserID)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockCollectionRepo.On("SaveCollection", ctx, mock.AnythingOfType("domain.Collection")).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()

	// Settling the full balance on both sides is allowed.
	_, err := suite.service.AddCollection(ctx, caller, dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(50),
		CashAmount: decimal.NewFromInt(2000),
	})

	suite.Require().NoError(err)
	suite.mockCollectionRepo.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestAddCollection_ForbiddenForOtherSalespersonsCustomer() {
	ctx := context.Background()
	customer := suite.ownedCustomer("sp-other")

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()

	_, err := suite.service.AddCollection(ctx, salespersonCaller(), dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(1),
		CashAmount: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CollectionServiceTestSuite) TestAddCollection_NotificationFailureDoesNotFailSettlement() {
	ctx := context.Background()
	caller := salespersonCaller()
	customer := suite.ownedCustomer(caller.UserID)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockCollectionRepo.On("SaveCollection", ctx, mock.AnythingOfType("domain.Collection")).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Return(apperrors.ErrInternal).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()

	_, err := suite.service.AddCollection(ctx, caller, dto.AddCollectionRequest{
		CustomerID: "cust-1",
		GoldAmount: decimal.NewFromInt(1),
		CashAmount: decimal.Zero,
	})

	suite.Require().NoError(err)
}

// --- DeleteCollection ---

func (suite *CollectionServiceTestSuite) TestDeleteCollection_AdminOnly() {
	ctx := context.Background()

	err := suite.service.DeleteCollection(ctx, salespersonCaller(), "col-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCollectionRepo.AssertNotCalled(suite.T(), "DeleteCollection", mock.Anything, mock.Anything)
}

func (suite *CollectionServiceTestSuite) TestDeleteCollection_Success() {
	ctx := context.Background()

	suite.mockCollectionRepo.On("DeleteCollection", ctx, "col-1").Return(nil).Once()

	err := suite.service.DeleteCollection(ctx, adminCaller(), "col-1")

	suite.Require().NoError(err)
	suite.mockCollectionRepo.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestDeleteCollection_NotFound() {
	ctx := context.Background()

	suite.mockCollectionRepo.On("DeleteCollection", ctx, "col-missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCollection(ctx, adminCaller(), "col-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Stats ---

func (suite *CollectionServiceTestSuite) TestMyStats_WindowPartitioning() {
	ctx := context.Background()
	caller := salespersonCaller()
	now := time.Now()

	collections := []domain.Collection{
		{
			CollectionID:   "col-today",
			SalesPersonID:  caller.UserID,
			GoldAmount:     decimal.NewFromInt(3),
			CashAmount:     decimal.NewFromInt(100),
			CollectionDate: now,
		},
		{
			CollectionID:   "col-old",
			SalesPersonID:  caller.UserID,
			GoldAmount:     decimal.NewFromInt(7),
			CashAmount:     decimal.NewFromInt(400),
			CollectionDate: now.AddDate(0, 0, -30),
		},
	}
	suite.mockCollectionRepo.On("FindCollectionsBySalesperson", ctx, caller.UserID).Return(collections, nil).Once()

	stats, err := suite.service.MyStats(ctx, caller)

	suite.Require().NoError(err)
	suite.Equal(2, stats.Total.Count)
	suite.True(stats.Total.Gold.Equal(decimal.NewFromInt(10)))
	suite.True(stats.Total.Cash.Equal(decimal.NewFromInt(500)))
	suite.Equal(1, stats.Today.Count)
	suite.True(stats.Today.Gold.Equal(decimal.NewFromInt(3)))
	suite.Equal(1, stats.Week.Count)
	suite.True(stats.Week.Cash.Equal(decimal.NewFromInt(100)))
}

func (suite *CollectionServiceTestSuite) TestAllStats_GroupsBySalesperson() {
	ctx := context.Background()
	now := time.Now()

	salespeople := []domain.User{
		{UserID: "sp-1", Name: "Sami", Role: rolePtr(domain.RoleSalesperson)},
		{UserID: "sp-2", Name: "Fahad", Role: rolePtr(domain.RoleSalesperson)},
	}
	collections := []domain.Collection{
		{CollectionID: "c1", SalesPersonID: "sp-1", GoldAmount: decimal.NewFromInt(2), CollectionDate: now},
		{CollectionID: "c2", SalesPersonID: "sp-1", GoldAmount: decimal.NewFromInt(3), CollectionDate: now.AddDate(0, 0, -10)},
		{CollectionID: "c3", SalesPersonID: "sp-2", CashAmount: decimal.NewFromInt(900), CollectionDate: now},
	}

	suite.mockUserRepo.On("FindUsersByRole", ctx, domain.RoleSalesperson).Return(salespeople, nil).Once()
	suite.mockCollectionRepo.On("FindAllCollections", ctx).Return(collections, nil).Once()

	stats, err := suite.service.AllStats(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Require().Len(stats, 2)
	suite.Equal("Sami", stats[0].SalesPersonName)
	suite.Equal(2, stats[0].Total.Count)
	suite.True(stats[0].Total.Gold.Equal(decimal.NewFromInt(5)))
	suite.Equal(1, stats[0].Today.Count)
	suite.True(stats[1].Total.Cash.Equal(decimal.NewFromInt(900)))
}

func (suite *CollectionServiceTestSuite) TestAllStats_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.AllStats(ctx, salespersonCaller())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Listing ---

func (suite *CollectionServiceTestSuite) TestListByCustomer_EnrichesDetails() {
	ctx := context.Background()
	caller := salespersonCaller()
	customer := suite.ownedCustomer(caller.UserID)

	collections := []domain.Collection{
		{CollectionID: "c1", CustomerID: "cust-1", SalesPersonID: caller.UserID},
	}
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil)
	suite.mockCollectionRepo.On("FindCollectionsByCustomer", ctx, "cust-1").Return(collections, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()

	details, err := suite.service.ListByCustomer(ctx, caller, "cust-1")

	suite.Require().NoError(err)
	suite.Require().Len(details, 1)
	suite.Equal("Abu Khalid", details[0].CustomerName)
	suite.Equal("Sami", details[0].SalesPersonName)
}

func (suite *CollectionServiceTestSuite) TestListAll_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.ListAll(ctx, salespersonCaller())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}
