package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/platform/config"
	"github.com/SscSPs/hr_platform_app/internal/utils"
)

// authService verifies credentials and issues bearer tokens.
type authService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login authenticates a local account and issues a JWT carrying the user's
// role names.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrForbidden) {
			s.LogError(ctx, err, "Credential verification failed unexpectedly")
		}
		return nil, err
	}

	roles, err := s.userSvc.GetUserRoles(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load roles for login", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to load roles for user %s: %w", user.UserID, apperrors.ErrInternal)
	}

	token, expiresAt, err := utils.GenerateAccessToken(user, roles, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to issue access token: %w", apperrors.ErrInternal)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user, roles),
	}, nil
}
