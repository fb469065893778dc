package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/platform/config"
	"github.com/goldsouq/debt_collection_app/internal/utils"
)

// tokenService implements the TokenService port for JWT access tokens and
// rotating opaque refresh tokens. Refresh tokens carry the user ID as a
// prefix ("<userID>.<random>") so rotation can locate the stored hash without
// a table scan; only the hash of the full token is persisted.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenService {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.TokenService = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(userID string) (string, time.Time, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

func (s *tokenService) ValidateAccessToken(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("invalid access token: %w", apperrors.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("access token missing subject: %w", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}

func (s *tokenService) IssueRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	token := userID + "." + raw
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	if err := s.userRepo.UpdateRefreshToken(ctx, userID, utils.HashRefreshToken(token), expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token hash")
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return token, expiresAt, nil
}

func (s *tokenService) RotateRefreshToken(ctx context.Context, presented string) (*domain.User, string, string, time.Time, error) {
	userID, _, ok := strings.Cut(presented, ".")
	if !ok || userID == "" {
		return nil, "", "", time.Time{}, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", "", time.Time{}, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to load user for refresh token rotation")
		return nil, "", "", time.Time{}, fmt.Errorf("failed to load user: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, "", "", time.Time{}, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, "", "", time.Time{}, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(presented, user.RefreshTokenHash) {
		return nil, "", "", time.Time{}, apperrors.ErrUnauthorized
	}

	newRefresh, _, err := s.IssueRefreshToken(ctx, user.UserID)
	if err != nil {
		return nil, "", "", time.Time{}, err
	}

	accessToken, accessExpiresAt, err := s.GenerateAccessToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token during rotation")
		return nil, "", "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return user, newRefresh, accessToken, accessExpiresAt, nil
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token")
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
