package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/utils"
)

// userService implements the UserService port.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserService {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserService = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, username, password, name string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability", slog.String("username", username))
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q is taken: %w", username, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		// Role stays nil until an admin assigns one.
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user for authentication", slog.String("username", username))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, caller domain.AuthContext, limit, offset int) ([]domain.User, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListSalespeople(ctx context.Context, caller domain.AuthContext) ([]domain.User, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindUsersByRole(ctx, domain.RoleSalesperson)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salespeople")
		return nil, fmt.Errorf("failed to list salespeople: %w", err)
	}
	return users, nil
}

func (s *userService) AssignRole(ctx context.Context, caller domain.AuthContext, userID string, role domain.UserRole, name string) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && role != domain.RoleSalesperson {
		return nil, fmt.Errorf("unknown role %q: %w", role, apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateUserRole(ctx, userID, role, name, caller.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to assign role",
			slog.String("user_id", userID),
			slog.String("role", string(role)))
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	s.LogInfo(ctx, "Role assigned",
		slog.String("user_id", userID),
		slog.String("role", string(role)))
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) BootstrapFirstAdmin(ctx context.Context, callerUserID, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	// Open only to users that have never been assigned a role.
	if user.Role != nil {
		return nil, fmt.Errorf("caller already has role %s: %w", *user.Role, apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.userRepo.UpdateUserRole(ctx, callerUserID, domain.RoleAdmin, name, callerUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to bootstrap first admin", slog.String("user_id", callerUserID))
		return nil, fmt.Errorf("failed to bootstrap first admin: %w", err)
	}

	s.LogInfo(ctx, "First admin bootstrapped", slog.String("user_id", callerUserID))
	return s.userRepo.FindUserByID(ctx, callerUserID)
}

func (s *userService) DeleteUser(ctx context.Context, caller domain.AuthContext, userID string) error {
	if err := s.RequireAdmin(ctx, caller); err != nil {
		return err
	}
	if caller.UserID == userID {
		return fmt.Errorf("admins cannot delete their own account: %w", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), caller.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
