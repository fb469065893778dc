package services

import (
	"context"
	"time"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// TokenService issues and verifies access and refresh tokens.
type TokenService interface {
	// GenerateAccessToken signs a short-lived JWT for the user.
	GenerateAccessToken(userID string) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken verifies a JWT and returns the subject user ID.
	ValidateAccessToken(token string) (string, error)

	// IssueRefreshToken mints an opaque refresh token and stores its hash on
	// the user row.
	IssueRefreshToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)

	// RotateRefreshToken validates a presented refresh token, invalidates it
	// and issues a replacement together with a fresh access token.
	RotateRefreshToken(ctx context.Context, presented string) (*domain.User, string, string, time.Time, error)

	// RevokeRefreshToken clears the stored refresh token, logging the user
	// out of all sessions that rely on it.
	RevokeRefreshToken(ctx context.Context, userID string) error
}
