package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/core/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	mockCustomerRepo     *MockCustomerRepository
	mockUserRepo         *MockUserRepository
	service              portssvc.NotificationService
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewNotificationService(
		suite.mockNotificationRepo,
		suite.mockCustomerRepo,
		suite.mockUserRepo,
	)
}

// --- CreateNotification ---

func (suite *NotificationServiceTestSuite) TestCreateNotification_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.CreateNotification(ctx, salespersonCaller(), dto.CreateNotificationRequest{
		UserID: "sp-1", Type: "daily_summary", Title: "t", Message: "m", Priority: "low",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *NotificationServiceTestSuite) TestCreateNotification_Success() {
	ctx := context.Background()
	target := &domain.User{UserID: "sp-1", Name: "Sami"}

	suite.mockUserRepo.On("FindUserByID", ctx, "sp-1").Return(target, nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "sp-1" && n.Type == domain.NotificationDailySummary &&
			n.Priority == domain.PriorityLow && !n.IsRead
	})).Return(nil).Once()

	notification, err := suite.service.CreateNotification(ctx, adminCaller(), dto.CreateNotificationRequest{
		UserID: "sp-1", Type: "daily_summary", Title: "Summary", Message: "All good", Priority: "low",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(notification.NotificationID)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

// --- Ownership ---

func (suite *NotificationServiceTestSuite) TestMarkRead_OwnerOnly() {
	ctx := context.Background()
	other := &domain.Notification{NotificationID: "n-1", UserID: "sp-other"}

	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "n-1").Return(other, nil).Once()

	err := suite.service.MarkRead(ctx, salespersonCaller(), "n-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkRead", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestDeleteNotification_OwnerOnly() {
	ctx := context.Background()
	other := &domain.Notification{NotificationID: "n-1", UserID: "sp-other"}

	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "n-1").Return(other, nil).Once()

	err := suite.service.DeleteNotification(ctx, salespersonCaller(), "n-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *NotificationServiceTestSuite) TestMarkAllRead_ReportsCount() {
	ctx := context.Background()
	caller := salespersonCaller()

	suite.mockNotificationRepo.On("MarkAllRead", ctx, caller.UserID).Return(int64(4), nil).Once()

	count, err := suite.service.MarkAllRead(ctx, caller)

	suite.Require().NoError(err)
	suite.Equal(int64(4), count)
}

// --- ListMine ---

func (suite *NotificationServiceTestSuite) TestListMine_EnrichesLinkedCustomer() {
	ctx := context.Background()
	caller := salespersonCaller()
	customerID := "cust-1"

	notifications := []domain.Notification{
		{NotificationID: "n-1", UserID: caller.UserID, CustomerID: &customerID},
		{NotificationID: "n-2", UserID: caller.UserID},
	}
	customer := &domain.Customer{CustomerID: customerID, Name: "Abu Khalid", Phone: "0501111111"}

	suite.mockNotificationRepo.On("FindNotificationsByUser", ctx, caller.UserID, 50).Return(notifications, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()

	details, err := suite.service.ListMine(ctx, caller)

	suite.Require().NoError(err)
	suite.Require().Len(details, 2)
	suite.Equal("Abu Khalid", details[0].CustomerName)
	suite.Empty(details[1].CustomerName)
}

// --- ScanHighDebt ---

func (suite *NotificationServiceTestSuite) TestScanHighDebt_FlagsOnlyThresholdCrossers() {
	ctx := context.Background()

	customers := []domain.Customer{
		// Total exactly at the threshold, gold at its threshold: not flagged.
		{CustomerID: "cust-ok", Name: "OK", GoldDebt: decimal.NewFromInt(100), CashDebt: decimal.NewFromInt(9900), SalesPersonID: "sp-1"},
		// Total over the threshold: flagged.
		{CustomerID: "cust-cash", Name: "Cash", GoldDebt: decimal.NewFromInt(1), CashDebt: decimal.NewFromInt(10001), SalesPersonID: "sp-1"},
		// Gold alone over its threshold: flagged.
		{CustomerID: "cust-gold", Name: "Gold", GoldDebt: decimal.NewFromInt(101), CashDebt: decimal.Zero, SalesPersonID: "sp-2"},
	}
	suite.mockCustomerRepo.On("FindCustomers", ctx, portsrepo.CustomerListFilter{}).Return(customers, nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationHighDebt && n.Priority == domain.PriorityHigh
	})).Return(nil).Twice()

	created, err := suite.service.ScanHighDebt(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestScanHighDebt_SaveFailureSkipsCustomer() {
	ctx := context.Background()

	customers := []domain.Customer{
		{CustomerID: "cust-1", Name: "A", GoldDebt: decimal.NewFromInt(500), SalesPersonID: "sp-1"},
		{CustomerID: "cust-2", Name: "B", GoldDebt: decimal.NewFromInt(500), SalesPersonID: "sp-2"},
	}
	suite.mockCustomerRepo.On("FindCustomers", ctx, portsrepo.CustomerListFilter{}).Return(customers, nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Return(apperrors.ErrInternal).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Return(nil).Once()

	created, err := suite.service.ScanHighDebt(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Equal(1, created)
}

func (suite *NotificationServiceTestSuite) TestScanHighDebt_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.ScanHighDebt(ctx, salespersonCaller())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
