package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/core/services"
	"github.com/goldsouq/debt_collection_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sami").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "sami" && u.Name == "Sami" &&
			u.PasswordHash != "secret123" && u.Role == nil
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, "sami", "secret123", "Sami")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	// New users have no role until an admin assigns one.
	suite.Nil(user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", Username: "sami"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sami").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, "sami", "secret123", "Sami")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("rightpassword")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u-1", Username: "sami", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sami").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "sami", "wrongpassword")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserIsUnauthorized() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	// Unknown users get the same error as a wrong password.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- AssignRole ---

func (suite *UserServiceTestSuite) TestAssignRole_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.AssignRole(ctx, salespersonCaller(), "u-1", domain.RoleSalesperson, "Sami")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAssignRole_RejectsUnknownRole() {
	ctx := context.Background()

	_, err := suite.service.AssignRole(ctx, adminCaller(), "u-1", domain.UserRole("superuser"), "Sami")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAssignRole_Success() {
	ctx := context.Background()
	caller := adminCaller()
	before := &domain.User{UserID: "u-1", Username: "sami"}
	after := &domain.User{UserID: "u-1", Username: "sami", Name: "Sami", Role: rolePtr(domain.RoleSalesperson)}

	suite.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(before, nil).Once()
	suite.mockUserRepo.On("UpdateUserRole", ctx, "u-1", domain.RoleSalesperson, "Sami", caller.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(after, nil).Once()

	user, err := suite.service.AssignRole(ctx, caller, "u-1", domain.RoleSalesperson, "Sami")

	suite.Require().NoError(err)
	suite.Require().NotNil(user.Role)
	suite.Equal(domain.RoleSalesperson, *user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- BootstrapFirstAdmin ---

func (suite *UserServiceTestSuite) TestBootstrapFirstAdmin_Success() {
	ctx := context.Background()
	before := &domain.User{UserID: "u-1", Username: "sami"}
	after := &domain.User{UserID: "u-1", Username: "sami", Name: "Sami", Role: rolePtr(domain.RoleAdmin)}

	suite.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(before, nil).Once()
	suite.mockUserRepo.On("UpdateUserRole", ctx, "u-1", domain.RoleAdmin, "Sami", "u-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "u-1").Return(after, nil).Once()

	user, err := suite.service.BootstrapFirstAdmin(ctx, "u-1", "Sami")

	suite.Require().NoError(err)
	suite.True(user.IsAdmin())
}

func (suite *UserServiceTestSuite) TestBootstrapFirstAdmin_RolelessUserPromotedEvenWithExistingAdmins() {
	ctx := context.Background()
	before := &domain.User{UserID: "u-2", Username: "huda"}
	after := &domain.User{UserID: "u-2", Username: "huda", Name: "Huda", Role: rolePtr(domain.RoleAdmin)}

	// The gate is the caller's own role; other admins in the book don't block it.
	suite.mockUserRepo.On("FindUserByID", ctx, "u-2").Return(before, nil).Once()
	suite.mockUserRepo.On("UpdateUserRole", ctx, "u-2", domain.RoleAdmin, "Huda", "u-2", mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "u-2").Return(after, nil).Once()

	user, err := suite.service.BootstrapFirstAdmin(ctx, "u-2", "Huda")

	suite.Require().NoError(err)
	suite.True(user.IsAdmin())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsersByRole", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestBootstrapFirstAdmin_ConflictWhenCallerHasRole() {
	ctx := context.Background()
	caller := &domain.User{UserID: "sp-1", Username: "sami", Role: rolePtr(domain.RoleSalesperson)}

	suite.mockUserRepo.On("FindUserByID", ctx, "sp-1").Return(caller, nil).Once()

	_, err := suite.service.BootstrapFirstAdmin(ctx, "sp-1", "Sami")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUserRole",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteUser ---

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteRejected() {
	ctx := context.Background()
	caller := adminCaller()

	err := suite.service.DeleteUser(ctx, caller, caller.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	caller := adminCaller()
	victim := &domain.User{UserID: "u-2", Username: "old"}

	suite.mockUserRepo.On("FindUserByID", ctx, "u-2").Return(victim, nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, "u-2", mock.AnythingOfType("time.Time"), caller.UserID).
		Return(nil).Once()

	err := suite.service.DeleteUser(ctx, caller, "u-2")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers ---

func (suite *UserServiceTestSuite) TestListUsers_ClampsLimit() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsers", ctx, 100, 0).Return([]domain.User{}, nil).Once()

	_, err := suite.service.ListUsers(ctx, adminCaller(), 5000, -3)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.ListUsers(ctx, salespersonCaller(), 10, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
