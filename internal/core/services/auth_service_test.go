package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/core/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserService mocks the user service facade for auth tests.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, filter portsrepo.UserSearchFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) GetUserRoles(ctx context.Context, userID string) ([]domain.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockUserService) AddRoleToUser(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserService) RemoveRoleFromUser(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserService) UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) error {
	args := m.Called(ctx, userID, salary)
	return args.Error(0)
}

func (m *MockUserService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserSvc *MockUserService
	service     portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserService)
	cfg := &config.Config{
		JWTSecret:         "test-secret-key",
		JWTIssuer:         "hr-platform-test",
		JWTExpiryDuration: time.Hour,
	}
	suite.service = services.NewAuthService(cfg, suite.mockUserSvc)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := &domain.User{
		UserID:    "user-1",
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana.reyes@example.com",
	}
	req := dto.LoginRequest{Email: user.Email, Password: "a-strong-password"}

	suite.mockUserSvc.On("VerifyCredentials", ctx, req.Email, req.Password).Return(user, nil).Once()
	suite.mockUserSvc.On("GetUserRoles", ctx, user.UserID).
		Return([]domain.Role{domain.RoleEmployee}, nil).Once()

	resp, err := suite.service.Login(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.True(resp.ExpiresAt.After(time.Now()))
	suite.Equal("user-1", resp.User.UserID)
	suite.Equal([]string{string(domain.RoleEmployee)}, resp.User.Roles)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_BadCredentials() {
	ctx := context.Background()
	req := dto.LoginRequest{Email: "dana.reyes@example.com", Password: "wrong"}

	suite.mockUserSvc.On("VerifyCredentials", ctx, req.Email, req.Password).
		Return(nil, apperrors.ErrForbidden).Once()

	resp, err := suite.service.Login(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserRoles", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_RoleLookupFailure() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-1", Email: "dana.reyes@example.com"}
	req := dto.LoginRequest{Email: user.Email, Password: "a-strong-password"}

	suite.mockUserSvc.On("VerifyCredentials", ctx, req.Email, req.Password).Return(user, nil).Once()
	suite.mockUserSvc.On("GetUserRoles", ctx, user.UserID).Return(nil, assert.AnError).Once()

	resp, err := suite.service.Login(ctx, req)

	// The caller gets a generic internal error, not the store failure.
	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.NotErrorIs(err, assert.AnError)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
