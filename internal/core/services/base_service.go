package services

import (
	"context"
	"log/slog"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the request-scoped logger from context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin rejects callers that do not hold the admin role.
func (s *BaseService) RequireAdmin(ctx context.Context, caller domain.AuthContext) error {
	if !caller.IsAdmin() {
		s.LogDebug(ctx, "Admin role required",
			slog.String("caller_id", caller.UserID),
			slog.String("caller_role", string(caller.Role)))
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireRole rejects callers that hold no role at all. Both admins and
// salespeople pass.
func (s *BaseService) RequireRole(ctx context.Context, caller domain.AuthContext) error {
	if !caller.IsAdmin() && !caller.IsSalesperson() {
		s.LogDebug(ctx, "Role required but caller has none",
			slog.String("caller_id", caller.UserID))
		return apperrors.ErrForbidden
	}
	return nil
}
