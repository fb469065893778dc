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

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo, suite.mockUserRepo)
}

// --- CreateCustomer ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_SalespersonOwnsOwnCustomers() {
	ctx := context.Background()
	caller := salespersonCaller()

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0501111111").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.SalesPersonID == caller.UserID && c.Phone == "0501111111"
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()

	details, err := suite.service.CreateCustomer(ctx, caller, dto.CreateCustomerRequest{
		Name:     "Abu Khalid",
		Phone:    "0501111111",
		Region:   "Riyadh",
		GoldDebt: decimal.NewFromInt(10),
		CashDebt: decimal.NewFromInt(500),
		// Owner request is ignored for salespeople.
		SalesPersonID: "sp-other",
	})

	suite.Require().NoError(err)
	suite.Equal(caller.UserID, details.SalesPersonID)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_AdminMustNameOwner() {
	ctx := context.Background()

	_, err := suite.service.CreateCustomer(ctx, adminCaller(), dto.CreateCustomerRequest{
		Name:   "Abu Khalid",
		Phone:  "0501111111",
		Region: "Riyadh",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicatePhone() {
	ctx := context.Background()
	caller := salespersonCaller()
	existing := &domain.Customer{CustomerID: "cust-1", Phone: "0501111111", SalesPersonID: caller.UserID}

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0501111111").Return(existing, nil).Once()

	_, err := suite.service.CreateCustomer(ctx, caller, dto.CreateCustomerRequest{
		Name:   "Abu Khalid",
		Phone:  "0501111111",
		Region: "Riyadh",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- GetCustomer / ListCustomers ---

func (suite *CustomerServiceTestSuite) TestGetCustomer_ForbiddenOutsideOwnBook() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-1", SalesPersonID: "sp-other"}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()

	_, err := suite.service.GetCustomer(ctx, salespersonCaller(), "cust-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_SalespersonScopedToOwnBook() {
	ctx := context.Background()
	caller := salespersonCaller()

	suite.mockCustomerRepo.On("FindCustomers", ctx, portsrepo.CustomerListFilter{
		SalesPersonID: caller.UserID,
	}).Return([]domain.Customer{}, nil).Once()
	suite.mockUserRepo.On("FindUsersByRole", ctx, domain.RoleSalesperson).Return([]domain.User{}, nil).Once()
	suite.mockUserRepo.On("FindUsersByRole", ctx, domain.RoleAdmin).Return([]domain.User{}, nil).Once()

	// Asking for another salesperson's book is silently overridden.
	_, err := suite.service.ListCustomers(ctx, caller, dto.ListCustomersParams{SalesPersonID: "sp-other"})

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestListCustomers_RegionAllMeansNoFilter() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomers", ctx, portsrepo.CustomerListFilter{}).
		Return([]domain.Customer{}, nil).Once()
	suite.mockUserRepo.On("FindUsersByRole", ctx, domain.RoleSalesperson).Return([]domain.User{}, nil).Once()
	suite.mockUserRepo.On("FindUsersByRole", ctx, domain.RoleAdmin).Return([]domain.User{}, nil).Once()

	_, err := suite.service.ListCustomers(ctx, adminCaller(), dto.ListCustomersParams{Region: "all"})

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

// --- UpdateCustomer ---

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_AdminOnly() {
	ctx := context.Background()
	caller := salespersonCaller()
	zero := decimal.Zero

	// Even on their own customer, a salesperson cannot edit the record; zeroing
	// the balances here would bypass the settlement path.
	_, err := suite.service.UpdateCustomer(ctx, caller, "cust-1", dto.UpdateCustomerRequest{
		GoldDebt: &zero,
		CashDebt: &zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialUpdate() {
	ctx := context.Background()
	caller := adminCaller()
	customer := &domain.Customer{
		CustomerID:    "cust-1",
		Name:          "Old Name",
		Phone:         "0501111111",
		Region:        "Riyadh",
		GoldDebt:      decimal.NewFromInt(10),
		SalesPersonID: "sp-1",
	}
	newName := "New Name"

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "New Name" && c.Phone == "0501111111" && c.GoldDebt.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "sp-1").
		Return(&domain.User{UserID: "sp-1", Name: "Sami"}, nil).Once()

	details, err := suite.service.UpdateCustomer(ctx, caller, "cust-1", dto.UpdateCustomerRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("New Name", details.Name)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

// --- Delete ---

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_AdminOnly() {
	ctx := context.Background()

	err := suite.service.DeleteCustomer(ctx, salespersonCaller(), "cust-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "DeleteCustomerCascade", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_Cascades() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-1", SalesPersonID: "sp-1"}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockCustomerRepo.On("DeleteCustomerCascade", ctx, "cust-1").Return(nil).Once()

	err := suite.service.DeleteCustomer(ctx, adminCaller(), "cust-1")

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeleteAllCustomers_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.DeleteAllCustomers(ctx, salespersonCaller())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CustomerServiceTestSuite) TestDeleteAllCustomers_ReportsCounts() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("DeleteAllCustomers", ctx).Return(int64(12), int64(34), nil).Once()

	result, err := suite.service.DeleteAllCustomers(ctx, adminCaller())

	suite.Require().NoError(err)
	suite.Equal(int64(12), result.DeletedCustomers)
	suite.Equal(int64(34), result.DeletedCollections)
}

// --- Bulk import / upsert ---

func (suite *CustomerServiceTestSuite) TestImportCustomers_RowFailuresAreIsolated() {
	ctx := context.Background()
	caller := salespersonCaller()

	// First row inserts, second collides on phone.
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0501111111").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0502222222").
		Return(&domain.Customer{CustomerID: "cust-2", Phone: "0502222222"}, nil).Once()

	result, err := suite.service.ImportCustomers(ctx, caller, []dto.CustomerRow{
		{Name: "A", Phone: "0501111111", Region: "Riyadh"},
		{Name: "B", Phone: "0502222222", Region: "Jeddah"},
	})

	suite.Require().NoError(err)
	suite.Equal(1, result.Success)
	suite.Equal(1, result.Failed)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(2, result.Errors[0].Row)
	suite.Equal("0502222222", result.Errors[0].Phone)
}

func (suite *CustomerServiceTestSuite) TestUpsertCustomers_CreatesAndUpdates() {
	ctx := context.Background()
	caller := salespersonCaller()
	existing := &domain.Customer{CustomerID: "cust-1", Phone: "0501111111", SalesPersonID: caller.UserID}

	// Row 1 updates the existing customer, row 2 creates a new one.
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0501111111").Return(existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerID == "cust-1" && c.Name == "Updated"
	})).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0502222222").Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).
		Return(&domain.User{UserID: caller.UserID, Name: "Sami"}, nil).Once()

	result, err := suite.service.UpsertCustomers(ctx, caller, []dto.CustomerRow{
		{Name: "Updated", Phone: "0501111111", Region: "Riyadh"},
		{Name: "New", Phone: "0502222222", Region: "Jeddah"},
	})

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(1, result.Updated)
	suite.Equal(0, result.Failed)
}

func (suite *CustomerServiceTestSuite) TestUpsertCustomers_SalespersonCannotTouchOthersRows() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerID: "cust-1", Phone: "0501111111", SalesPersonID: "sp-other"}

	suite.mockCustomerRepo.On("FindCustomerByPhone", ctx, "0501111111").Return(existing, nil).Once()

	result, err := suite.service.UpsertCustomers(ctx, salespersonCaller(), []dto.CustomerRow{
		{Name: "Hijack", Phone: "0501111111", Region: "Riyadh"},
	})

	suite.Require().NoError(err)
	suite.Equal(1, result.Failed)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
