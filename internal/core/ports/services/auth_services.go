package services

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/dto"
)

// AuthSvcFacade issues bearer tokens for verified credentials.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
