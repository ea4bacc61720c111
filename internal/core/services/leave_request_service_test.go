package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaveRequestRepository ---
type MockLeaveRequestRepository struct {
	mock.Mock
}

func (m *MockLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID int64) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveRequestID)
	var request *domain.LeaveRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.LeaveRequest)
	}
	return request, args.Error(1)
}

func (m *MockLeaveRequestRepository) ListUpcomingByEmployee(ctx context.Context, employeeID string, asOf time.Time) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID, asOf)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *MockLeaveRequestRepository) ListPendingLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *MockLeaveRequestRepository) ListLeaveRequestsByManager(ctx context.Context, managerID string) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, managerID)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *MockLeaveRequestRepository) HasOverlappingRequest(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeaveRequestRepository) CountApprovedTeamOverlaps(ctx context.Context, teamID int64, start, end time.Time) (int, error) {
	args := m.Called(ctx, teamID, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, request)
	var saved *domain.LeaveRequest
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.LeaveRequest)
	}
	return saved, args.Error(1)
}

func (m *MockLeaveRequestRepository) UpdateLeaveRequestStatus(ctx context.Context, leaveRequestID int64, status domain.LeaveRequestStatus) error {
	args := m.Called(ctx, leaveRequestID, status)
	return args.Error(0)
}

// --- Mock TeamReader ---
type MockTeamReader struct {
	mock.Mock
}

func (m *MockTeamReader) FindTeamByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	var team *domain.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*domain.Team)
	}
	return team, args.Error(1)
}

func (m *MockTeamReader) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	var teams []domain.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]domain.Team)
	}
	return teams, args.Error(1)
}

func (m *MockTeamReader) ListManagedTeams(ctx context.Context, managerID string) ([]domain.Team, error) {
	args := m.Called(ctx, managerID)
	var teams []domain.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]domain.Team)
	}
	return teams, args.Error(1)
}

func (m *MockTeamReader) FindTeamMembership(ctx context.Context, userID string) (*domain.TeamMember, error) {
	args := m.Called(ctx, userID)
	var member *domain.TeamMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.TeamMember)
	}
	return member, args.Error(1)
}

func (m *MockTeamReader) ListTeamMemberships(ctx context.Context, userID string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, userID)
	var members []domain.TeamMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.TeamMember)
	}
	return members, args.Error(1)
}

func (m *MockTeamReader) ListTeamMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	var members []domain.TeamMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.TeamMember)
	}
	return members, args.Error(1)
}

func (m *MockTeamReader) CountTeamMembers(ctx context.Context, teamID int64) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

// --- Test Suite ---
type LeaveRequestServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo *MockLeaveRequestRepository
	mockTeamRepo  *MockTeamReader
	service       portssvc.LeaveRequestSvcFacade
}

func (suite *LeaveRequestServiceTestSuite) SetupTest() {
	suite.mockLeaveRepo = new(MockLeaveRequestRepository)
	suite.mockTeamRepo = new(MockTeamReader)
	suite.service = services.NewLeaveRequestService(suite.mockLeaveRepo, suite.mockTeamRepo, true)
}

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

// --- SubmitLeaveRequest Tests ---

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	managerID := uuid.NewString()
	start := day("2026-09-07")
	end := day("2026-09-11")

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).
		Return(&domain.TeamMember{TeamID: 7, UserID: employeeID}, nil).Once()
	suite.mockLeaveRepo.On("HasOverlappingRequest", ctx, employeeID, start, end).Return(false, nil).Once()
	suite.mockTeamRepo.On("CountTeamMembers", ctx, int64(7)).Return(10, nil).Once()
	suite.mockLeaveRepo.On("CountApprovedTeamOverlaps", ctx, int64(7), start, end).Return(0, nil).Once()
	suite.mockTeamRepo.On("FindTeamByID", ctx, int64(7)).
		Return(&domain.Team{TeamID: 7, Name: "Platform", ManagerID: managerID}, nil).Once()
	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.MatchedBy(func(request domain.LeaveRequest) bool {
		return request.EmployeeID == employeeID &&
			request.TeamID == 7 &&
			request.Status == domain.LeaveStatusPending &&
			request.ManagerID == managerID
	})).Return(&domain.LeaveRequest{
		LeaveRequestID: 42,
		EmployeeID:     employeeID,
		TeamID:         7,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.LeaveStatusPending,
		ManagerID:      managerID,
	}, nil).Once()

	created, err := suite.service.SubmitLeaveRequest(ctx, employeeID, start, end)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(42), created.LeaveRequestID)
	suite.Equal(managerID, created.ManagerID)
	suite.Equal(domain.LeaveStatusPending, created.Status)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
	suite.mockTeamRepo.AssertExpectations(suite.T())
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_SingleDay() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	start := day("2026-09-07")

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).
		Return(&domain.TeamMember{TeamID: 7, UserID: employeeID}, nil).Once()
	suite.mockLeaveRepo.On("HasOverlappingRequest", ctx, employeeID, start, start).Return(false, nil).Once()
	suite.mockTeamRepo.On("CountTeamMembers", ctx, int64(7)).Return(10, nil).Once()
	suite.mockLeaveRepo.On("CountApprovedTeamOverlaps", ctx, int64(7), start, start).Return(0, nil).Once()
	suite.mockTeamRepo.On("FindTeamByID", ctx, int64(7)).
		Return(&domain.Team{TeamID: 7, ManagerID: uuid.NewString()}, nil).Once()
	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).
		Return(&domain.LeaveRequest{LeaveRequestID: 1, StartDate: start, EndDate: start}, nil).Once()

	created, err := suite.service.SubmitLeaveRequest(ctx, employeeID, start, start)

	suite.Require().NoError(err)
	suite.Equal(created.StartDate, created.EndDate)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_EndBeforeStart() {
	ctx := context.Background()

	created, err := suite.service.SubmitLeaveRequest(ctx, uuid.NewString(), day("2026-09-11"), day("2026-09-07"))

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTeamRepo.AssertNotCalled(suite.T(), "FindTeamMembership", mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_NotOnTeam() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.SubmitLeaveRequest(ctx, employeeID, day("2026-09-07"), day("2026-09-11"))

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, services.ErrNotOnTeam)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_Overlap() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	start := day("2026-09-07")
	end := day("2026-09-11")

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).
		Return(&domain.TeamMember{TeamID: 7, UserID: employeeID}, nil).Once()
	suite.mockLeaveRepo.On("HasOverlappingRequest", ctx, employeeID, start, end).Return(true, nil).Once()

	created, err := suite.service.SubmitLeaveRequest(ctx, employeeID, start, end)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, services.ErrOverlappingRequest)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_CapacityExceeded() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	start := day("2026-09-07")
	end := day("2026-09-11")

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).
		Return(&domain.TeamMember{TeamID: 7, UserID: employeeID}, nil).Once()
	suite.mockLeaveRepo.On("HasOverlappingRequest", ctx, employeeID, start, end).Return(false, nil).Once()
	// 40 members: ceil(40 * 0.05) = 2 approved overlaps saturate the team.
	suite.mockTeamRepo.On("CountTeamMembers", ctx, int64(7)).Return(40, nil).Once()
	suite.mockLeaveRepo.On("CountApprovedTeamOverlaps", ctx, int64(7), start, end).Return(2, nil).Once()

	created, err := suite.service.SubmitLeaveRequest(ctx, employeeID, start, end)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, services.ErrTeamCapacityExceeded)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_CapacityGuardDisabled() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	start := day("2026-09-07")
	end := day("2026-09-11")

	service := services.NewLeaveRequestService(suite.mockLeaveRepo, suite.mockTeamRepo, false)

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).
		Return(&domain.TeamMember{TeamID: 7, UserID: employeeID}, nil).Once()
	suite.mockLeaveRepo.On("HasOverlappingRequest", ctx, employeeID, start, end).Return(false, nil).Once()
	suite.mockTeamRepo.On("FindTeamByID", ctx, int64(7)).
		Return(&domain.Team{TeamID: 7, ManagerID: uuid.NewString()}, nil).Once()
	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).
		Return(&domain.LeaveRequest{LeaveRequestID: 9}, nil).Once()

	created, err := service.SubmitLeaveRequest(ctx, employeeID, start, end)

	suite.Require().NoError(err)
	suite.NotNil(created)
	suite.mockTeamRepo.AssertNotCalled(suite.T(), "CountTeamMembers", mock.Anything, mock.Anything)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "CountApprovedTeamOverlaps", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitLeaveRequest_ConcurrentOverlap() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	start := day("2026-09-07")
	end := day("2026-09-11")

	suite.mockTeamRepo.On("FindTeamMembership", ctx, employeeID).
		Return(&domain.TeamMember{TeamID: 7, UserID: employeeID}, nil).Once()
	suite.mockLeaveRepo.On("HasOverlappingRequest", ctx, employeeID, start, end).Return(false, nil).Once()
	suite.mockTeamRepo.On("CountTeamMembers", ctx, int64(7)).Return(10, nil).Once()
	suite.mockLeaveRepo.On("CountApprovedTeamOverlaps", ctx, int64(7), start, end).Return(0, nil).Once()
	suite.mockTeamRepo.On("FindTeamByID", ctx, int64(7)).
		Return(&domain.Team{TeamID: 7, ManagerID: uuid.NewString()}, nil).Once()
	// A concurrent submission landed first; the transactional re-check reports
	// a conflict.
	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	created, err := suite.service.SubmitLeaveRequest(ctx, employeeID, start, end)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, services.ErrOverlappingRequest)
}

// --- ListLeaveRequestsForReview Tests ---

func (suite *LeaveRequestServiceTestSuite) TestListForReview_Elevated() {
	ctx := context.Background()
	pending := []domain.LeaveRequest{{LeaveRequestID: 1}, {LeaveRequestID: 2}}

	suite.mockLeaveRepo.On("ListPendingLeaveRequests", ctx).Return(pending, nil).Once()

	requests, err := suite.service.ListLeaveRequestsForReview(ctx, uuid.NewString(), true)

	suite.Require().NoError(err)
	suite.Len(requests, 2)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "ListLeaveRequestsByManager", mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestListForReview_Manager() {
	ctx := context.Background()
	managerID := uuid.NewString()
	assigned := []domain.LeaveRequest{{LeaveRequestID: 3, ManagerID: managerID}}

	suite.mockLeaveRepo.On("ListLeaveRequestsByManager", ctx, managerID).Return(assigned, nil).Once()

	requests, err := suite.service.ListLeaveRequestsForReview(ctx, managerID, false)

	suite.Require().NoError(err)
	suite.Len(requests, 1)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "ListPendingLeaveRequests", mock.Anything)
}

// --- DecideLeaveRequest Tests ---

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_Approve() {
	ctx := context.Background()
	managerID := uuid.NewString()
	request := &domain.LeaveRequest{LeaveRequestID: 5, Status: domain.LeaveStatusPending, ManagerID: managerID}

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(5)).Return(request, nil).Once()
	suite.mockLeaveRepo.On("UpdateLeaveRequestStatus", ctx, int64(5), domain.LeaveStatusApproved).Return(nil).Once()

	err := suite.service.DecideLeaveRequest(ctx, 5, managerID, false, domain.DecisionApprove)

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_RejectByAdmin() {
	ctx := context.Background()
	request := &domain.LeaveRequest{LeaveRequestID: 5, Status: domain.LeaveStatusPending, ManagerID: uuid.NewString()}

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(5)).Return(request, nil).Once()
	suite.mockLeaveRepo.On("UpdateLeaveRequestStatus", ctx, int64(5), domain.LeaveStatusRejected).Return(nil).Once()

	// Elevated reviewer is not the assigned manager but may still decide.
	err := suite.service.DecideLeaveRequest(ctx, 5, uuid.NewString(), true, domain.DecisionReject)

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_Forbidden() {
	ctx := context.Background()
	request := &domain.LeaveRequest{LeaveRequestID: 5, Status: domain.LeaveStatusPending, ManagerID: uuid.NewString()}

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(5)).Return(request, nil).Once()

	err := suite.service.DecideLeaveRequest(ctx, 5, uuid.NewString(), false, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "UpdateLeaveRequestStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_AlreadyFinal() {
	ctx := context.Background()
	managerID := uuid.NewString()
	request := &domain.LeaveRequest{LeaveRequestID: 5, Status: domain.LeaveStatusApproved, ManagerID: managerID}

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(5)).Return(request, nil).Once()

	err := suite.service.DecideLeaveRequest(ctx, 5, managerID, false, domain.DecisionReject)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRequestFinalized)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "UpdateLeaveRequestStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_RaceLost() {
	ctx := context.Background()
	managerID := uuid.NewString()
	request := &domain.LeaveRequest{LeaveRequestID: 5, Status: domain.LeaveStatusPending, ManagerID: managerID}

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(5)).Return(request, nil).Once()
	suite.mockLeaveRepo.On("UpdateLeaveRequestStatus", ctx, int64(5), domain.LeaveStatusApproved).
		Return(apperrors.ErrDuplicate).Once()

	err := suite.service.DecideLeaveRequest(ctx, 5, managerID, false, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRequestFinalized)
}

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_UnknownDecision() {
	ctx := context.Background()

	err := suite.service.DecideLeaveRequest(ctx, 5, uuid.NewString(), true, domain.LeaveDecision("Maybe"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "FindLeaveRequestByID", mock.Anything, mock.Anything)
}

func (suite *LeaveRequestServiceTestSuite) TestDecideLeaveRequest_NotFound() {
	ctx := context.Background()

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DecideLeaveRequest(ctx, 99, uuid.NewString(), true, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LeaveRequestServiceTestSuite) TestListUpcoming_EmptyResult() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := day("2026-08-31")

	suite.mockLeaveRepo.On("ListUpcomingByEmployee", ctx, employeeID, asOf).Return(nil, nil).Once()

	requests, err := suite.service.ListUpcomingLeaveRequests(ctx, employeeID, asOf)

	suite.Require().NoError(err)
	suite.NotNil(requests)
	suite.Empty(requests)
}

func (suite *LeaveRequestServiceTestSuite) TestListUpcoming_RepoError() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	asOf := day("2026-08-31")

	suite.mockLeaveRepo.On("ListUpcomingByEmployee", ctx, employeeID, asOf).Return(nil, assert.AnError).Once()

	requests, err := suite.service.ListUpcomingLeaveRequests(ctx, employeeID, asOf)

	suite.Require().Error(err)
	suite.Nil(requests)
}

func TestLeaveRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveRequestServiceTestSuite))
}
