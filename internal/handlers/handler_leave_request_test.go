package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/core/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/handlers"
	"github.com/SscSPs/hr_platform_app/internal/middleware"
	"github.com/SscSPs/hr_platform_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaveRequestService ---
type MockLeaveRequestService struct {
	mock.Mock
}

func (m *MockLeaveRequestService) SubmitLeaveRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestService) ListUpcomingLeaveRequests(ctx context.Context, employeeID string, asOf time.Time) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestService) ListLeaveRequestsForReview(ctx context.Context, reviewerID string, elevated bool) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, reviewerID, elevated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestService) DecideLeaveRequest(ctx context.Context, leaveRequestID int64, reviewerID string, elevated bool, decision domain.LeaveDecision) error {
	args := m.Called(ctx, leaveRequestID, reviewerID, elevated, decision)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LeaveRequestSvcFacade = (*MockLeaveRequestService)(nil)

// --- Test Suite ---
type LeaveRequestHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockLeaveRequestService
	jwtSecret string
}

func (suite *LeaveRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSvc = new(MockLeaveRequestService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLeaveRequestRoutes(v1, suite.mockSvc)
}

// generateTestToken creates a signed JWT carrying the given roles.
func (suite *LeaveRequestHandlerTestSuite) generateTestToken(userID string, roles ...string) string {
	claims := utils.AccessClaims{
		Email: "test@example.com",
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "hrp-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LeaveRequestHandlerTestSuite) doRequest(method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_Success() {
	employeeID := uuid.NewString()
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	expected := &domain.LeaveRequest{
		LeaveRequestID: 42,
		EmployeeID:     employeeID,
		TeamID:         7,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.LeaveStatusPending,
		ManagerID:      uuid.NewString(),
	}

	suite.mockSvc.On("SubmitLeaveRequest",
		mock.AnythingOfType("*context.valueCtx"),
		employeeID,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(start) }),
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(end) }),
	).Return(expected, nil).Once()

	token := suite.generateTestToken(employeeID, string(domain.RoleEmployee))
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-requests", token, dto.CreateLeaveRequestRequest{
		StartDate: start,
		EndDate:   end,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.LeaveRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(42), body.LeaveRequestID)
	suite.Equal(string(domain.LeaveStatusPending), body.Status)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_RequiresEmployeeRole() {
	token := suite.generateTestToken(uuid.NewString(), string(domain.RoleUser))
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-requests", token, dto.CreateLeaveRequestRequest{
		StartDate: time.Now(),
		EndDate:   time.Now().Add(24 * time.Hour),
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "SubmitLeaveRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_Unauthenticated() {
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-requests", "", dto.CreateLeaveRequestRequest{
		StartDate: time.Now(),
		EndDate:   time.Now().Add(24 * time.Hour),
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_OverlapConflict() {
	employeeID := uuid.NewString()

	suite.mockSvc.On("SubmitLeaveRequest",
		mock.AnythingOfType("*context.valueCtx"), employeeID, mock.Anything, mock.Anything,
	).Return(nil, services.ErrOverlappingRequest).Once()

	token := suite.generateTestToken(employeeID, string(domain.RoleEmployee))
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-requests", token, dto.CreateLeaveRequestRequest{
		StartDate: time.Now(),
		EndDate:   time.Now().Add(24 * time.Hour),
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestListForReview_AdminSeesAll() {
	adminID := uuid.NewString()
	pending := []domain.LeaveRequest{
		{LeaveRequestID: 1, Status: domain.LeaveStatusPending},
		{LeaveRequestID: 2, Status: domain.LeaveStatusPending},
	}

	suite.mockSvc.On("ListLeaveRequestsForReview",
		mock.AnythingOfType("*context.valueCtx"), adminID, true,
	).Return(pending, nil).Once()

	token := suite.generateTestToken(adminID, string(domain.RoleAdmin))
	w := suite.doRequest(http.MethodGet, "/api/v1/leave-requests/review", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListLeaveRequestsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.LeaveRequests, 2)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestListForReview_ManagerScoped() {
	managerID := uuid.NewString()

	suite.mockSvc.On("ListLeaveRequestsForReview",
		mock.AnythingOfType("*context.valueCtx"), managerID, false,
	).Return([]domain.LeaveRequest{}, nil).Once()

	token := suite.generateTestToken(managerID, string(domain.RoleManager))
	w := suite.doRequest(http.MethodGet, "/api/v1/leave-requests/review", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestDecideLeaveRequest_Success() {
	managerID := uuid.NewString()

	suite.mockSvc.On("DecideLeaveRequest",
		mock.AnythingOfType("*context.valueCtx"), int64(42), managerID, false, domain.DecisionApprove,
	).Return(nil).Once()

	token := suite.generateTestToken(managerID, string(domain.RoleManager))
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-requests/42/decision", token, dto.DecideLeaveRequestRequest{
		Decision: "Approve",
	})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestDecideLeaveRequest_AlreadyDecided() {
	managerID := uuid.NewString()

	suite.mockSvc.On("DecideLeaveRequest",
		mock.AnythingOfType("*context.valueCtx"), int64(42), managerID, false, domain.DecisionReject,
	).Return(services.ErrRequestFinalized).Once()

	token := suite.generateTestToken(managerID, string(domain.RoleManager))
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-requests/42/decision", token, dto.DecideLeaveRequestRequest{
		Decision: "Reject",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestDecideLeaveRequest_InvalidID() {
	token := suite.generateTestToken(uuid.NewString(), string(domain.RoleManager))
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/leave-requests/%s/decision", "not-a-number"), token, dto.DecideLeaveRequestRequest{
		Decision: "Approve",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "DecideLeaveRequest",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestLeaveRequestHandler(t *testing.T) {
	suite.Run(t, new(LeaveRequestHandlerTestSuite))
}
