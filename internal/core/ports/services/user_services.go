package services

import (
	"context"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// UserService manages account lifecycle and role assignment.
type UserService interface {
	// RegisterUser creates a role-less account. New accounts cannot reach any
	// business data until an admin assigns them a role.
	RegisterUser(ctx context.Context, username, password, name string) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the account.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID fetches a single account.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns all accounts. Admin only.
	ListUsers(ctx context.Context, caller domain.AuthContext, limit, offset int) ([]domain.User, error)

	// ListSalespeople returns every account holding the salesperson role.
	// Admin only.
	ListSalespeople(ctx context.Context, caller domain.AuthContext) ([]domain.User, error)

	// AssignRole sets a user's role and display name. Admin only.
	AssignRole(ctx context.Context, caller domain.AuthContext, userID string, role domain.UserRole, name string) (*domain.User, error)

	// BootstrapFirstAdmin promotes the caller to admin, but only while the
	// system has no admin at all.
	BootstrapFirstAdmin(ctx context.Context, callerUserID, name string) (*domain.User, error)

	// DeleteUser soft-deletes an account. Admins cannot delete themselves.
	DeleteUser(ctx context.Context, caller domain.AuthContext, userID string) error
}
