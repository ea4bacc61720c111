package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobApplicationColumns = []string{
	"job_application_id", "job_posting_id", "applicant_name", "applicant_email",
	"resume_url", "status", "denial_reason",
}

func newJobApplicationMock(t *testing.T) (pgxmock.PgxPoolIface, *PgxJobApplicationRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	userRepo := newPgxUserRepository(mock)
	teamRepo := newPgxTeamRepository(mock)
	repo := newPgxJobApplicationRepository(mock, userRepo, teamRepo).(*PgxJobApplicationRepository)
	return mock, repo
}

func TestJobApplicationRepository_HasPendingApplication(t *testing.T) {
	mock, repo := newJobApplicationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE LOWER(applicant_email) = LOWER($1) AND status = $2`)).
		WithArgs("Dana.Reyes@Example.com", domain.ApplicationStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	hasPending, err := repo.HasPendingApplication(context.Background(), "Dana.Reyes@Example.com")

	require.NoError(t, err)
	assert.True(t, hasPending)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_Save(t *testing.T) {
	mock, repo := newJobApplicationMock(t)
	application := domain.JobApplication{
		JobPostingID:   3,
		ApplicantName:  "Dana Reyes",
		ApplicantEmail: "dana.reyes@example.com",
		ResumeURL:      "https://cdn.example.com/resumes/dana.pdf",
		Status:         domain.ApplicationStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO job_applications`)).
		WithArgs(int64(3), "Dana Reyes", "dana.reyes@example.com",
			"https://cdn.example.com/resumes/dana.pdf", domain.ApplicationStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"job_application_id"}).AddRow(int64(11)))

	saved, err := repo.SaveJobApplication(context.Background(), application)

	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.JobApplicationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_Deny_Success(t *testing.T) {
	mock, repo := newJobApplicationMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE job_applications`)).
		WithArgs(int64(11), domain.ApplicationStatusDenied, "Position filled internally", domain.ApplicationStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.DenyJobApplication(context.Background(), 11, "Position filled internally")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_Deny_AlreadyFinal(t *testing.T) {
	mock, repo := newJobApplicationMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE job_applications`)).
		WithArgs(int64(11), domain.ApplicationStatusDenied, "Too late", domain.ApplicationStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM job_applications WHERE job_application_id = $1;`)).
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(string(domain.ApplicationStatusApproved)))

	err := repo.DenyJobApplication(context.Background(), 11, "Too late")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_Approve_Success(t *testing.T) {
	mock, repo := newJobApplicationMock(t)
	salary := decimal.NewFromInt(85000)
	member := domain.TeamMember{
		TeamID:   7,
		UserID:   "user-1",
		JoinedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE job_applications`)).
		WithArgs(int64(11), domain.ApplicationStatusApproved, domain.ApplicationStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_roles`)).
		WithArgs("user-1", domain.RoleUser).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_roles`)).
		WithArgs("user-1", domain.RoleEmployee).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET salary = $2 WHERE user_id = $1;`)).
		WithArgs("user-1", salary).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_members`)).
		WithArgs(int64(7), "user-1", member.JoinedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.ApproveJobApplication(context.Background(), 11, "user-1", salary, member)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_Approve_AlreadyFinalRollsBack(t *testing.T) {
	mock, repo := newJobApplicationMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE job_applications`)).
		WithArgs(int64(11), domain.ApplicationStatusApproved, domain.ApplicationStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM job_applications WHERE job_application_id = $1;`)).
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(string(domain.ApplicationStatusDenied)))
	mock.ExpectRollback()

	err := repo.ApproveJobApplication(context.Background(), 11, "user-1", decimal.NewFromInt(85000), domain.TeamMember{TeamID: 7, UserID: "user-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_Approve_MidTxFailureRollsBack(t *testing.T) {
	mock, repo := newJobApplicationMock(t)
	salary := decimal.NewFromInt(85000)
	member := domain.TeamMember{
		TeamID:   7,
		UserID:   "user-1",
		JoinedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE job_applications`)).
		WithArgs(int64(11), domain.ApplicationStatusApproved, domain.ApplicationStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_roles`)).
		WithArgs("user-1", domain.RoleUser).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_roles`)).
		WithArgs("user-1", domain.RoleEmployee).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// The salary write fails; nothing before it may stick.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET salary = $2 WHERE user_id = $1;`)).
		WithArgs("user-1", salary).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ApproveJobApplication(context.Background(), 11, "user-1", salary, member)

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_ListPendingByPosting(t *testing.T) {
	mock, repo := newJobApplicationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ja.job_posting_id = $1 AND ja.status = $2`)).
		WithArgs(int64(3), domain.ApplicationStatusPending).
		WillReturnRows(pgxmock.NewRows(jobApplicationColumns).
			AddRow(int64(11), int64(3), "Dana Reyes", "dana.reyes@example.com",
				"https://cdn.example.com/resumes/dana.pdf", string(domain.ApplicationStatusPending), nil))

	applications, err := repo.ListPendingByPosting(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "Dana Reyes", applications[0].ApplicantName)
	assert.Nil(t, applications[0].DenialReason)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_ListProcessed_Filters(t *testing.T) {
	mock, repo := newJobApplicationMock(t)
	reason := "Position filled internally"

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ja.status != $1 AND jp.title ILIKE $2 AND ja.applicant_name ILIKE $3`)).
		WithArgs(domain.ApplicationStatusPending, "%Engineer%", "%Reyes%").
		WillReturnRows(pgxmock.NewRows(jobApplicationColumns).
			AddRow(int64(8), int64(3), "Dana Reyes", "dana.reyes@example.com",
				"https://cdn.example.com/resumes/dana.pdf", string(domain.ApplicationStatusDenied), &reason))

	applications, err := repo.ListProcessedApplications(context.Background(), portsrepo.ApplicationLogFilter{
		Title:         "Engineer",
		ApplicantName: "Reyes",
	})

	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, domain.ApplicationStatusDenied, applications[0].Status)
	require.NotNil(t, applications[0].DenialReason)
	require.NoError(t, mock.ExpectationsWereMet())
}
