package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxJobApplicationRepository struct {
	BaseRepository
	userRepo portsrepo.UserTxWriter
	teamRepo portsrepo.TeamTxWriter
}

// newPgxJobApplicationRepository creates a new repository for job application
// data. The user and team repositories supply the writes approval runs inside
// its transaction.
func newPgxJobApplicationRepository(pool PgxPool, userRepo portsrepo.UserTxWriter, teamRepo portsrepo.TeamTxWriter) portsrepo.JobApplicationRepositoryFacade {
	return &PgxJobApplicationRepository{
		BaseRepository: BaseRepository{Pool: pool},
		userRepo:       userRepo,
		teamRepo:       teamRepo,
	}
}

// Ensure PgxJobApplicationRepository implements portsrepo.JobApplicationRepositoryFacade
var _ portsrepo.JobApplicationRepositoryFacade = (*PgxJobApplicationRepository)(nil)

var FULL_JOB_APPLICATION_SELECT_QUERY = `
SELECT
	ja.job_application_id, ja.job_posting_id, ja.applicant_name, ja.applicant_email,
	ja.resume_url, ja.status, ja.denial_reason
FROM job_applications ja
`

func (r *PgxJobApplicationRepository) getJobApplications(ctx context.Context, filterQuery string, args ...any) ([]domain.JobApplication, error) {
	query := FULL_JOB_APPLICATION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query job applications", err)
	}
	defer rows.Close()
	applications, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.JobApplication])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.JobApplication{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect job application rows", err)
	}
	return applications, nil
}

func (r *PgxJobApplicationRepository) FindJobApplicationByID(ctx context.Context, jobApplicationID int64) (*domain.JobApplication, error) {
	applications, err := r.getJobApplications(ctx, `WHERE ja.job_application_id = $1`, jobApplicationID)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &applications[0], nil
}

func (r *PgxJobApplicationRepository) ListPendingByPosting(ctx context.Context, jobPostingID int64) ([]domain.JobApplication, error) {
	return r.getJobApplications(ctx,
		`WHERE ja.job_posting_id = $1 AND ja.status = $2 ORDER BY ja.job_application_id;`,
		jobPostingID, domain.ApplicationStatusPending)
}

func (r *PgxJobApplicationRepository) HasPendingApplication(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM job_applications
			WHERE LOWER(applicant_email) = LOWER($1) AND status = $2
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, email, domain.ApplicationStatusPending).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check pending applications", err)
	}
	return exists, nil
}

func (r *PgxJobApplicationRepository) ListProcessedApplications(ctx context.Context, filter portsrepo.ApplicationLogFilter) ([]domain.JobApplication, error) {
	filterQuery := `
	JOIN job_postings jp ON jp.job_posting_id = ja.job_posting_id
	JOIN users u ON u.user_id = jp.recruiter_id
	WHERE ja.status != $1`
	args := []any{domain.ApplicationStatusPending}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		filterQuery += ` AND jp.title ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.PostedDate != nil {
		args = append(args, *filter.PostedDate)
		filterQuery += ` AND jp.posted_date::date = $` + strconv.Itoa(len(args)) + `::date`
	}
	if filter.Recruiter != "" {
		args = append(args, "%"+filter.Recruiter+"%")
		p := "$" + strconv.Itoa(len(args))
		filterQuery += ` AND (u.first_name || ' ' || u.last_name ILIKE ` + p + ` OR u.email ILIKE ` + p + `)`
	}
	if filter.ApplicantName != "" {
		args = append(args, "%"+filter.ApplicantName+"%")
		filterQuery += ` AND ja.applicant_name ILIKE $` + strconv.Itoa(len(args))
	}
	filterQuery += ` ORDER BY ja.job_application_id DESC;`

	return r.getJobApplications(ctx, filterQuery, args...)
}

func (r *PgxJobApplicationRepository) SaveJobApplication(ctx context.Context, application domain.JobApplication) (*domain.JobApplication, error) {
	query := `
		INSERT INTO job_applications (job_posting_id, applicant_name, applicant_email, resume_url, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING job_application_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		application.JobPostingID,
		application.ApplicantName,
		application.ApplicantEmail,
		application.ResumeURL,
		application.Status,
	).Scan(&application.JobApplicationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save job application", err)
	}
	return &application, nil
}

func (r *PgxJobApplicationRepository) DenyJobApplication(ctx context.Context, jobApplicationID int64, reason string) error {
	query := `
		UPDATE job_applications
		SET status = $2, denial_reason = $3
		WHERE job_application_id = $1 AND status = $4;
	`
	result, err := r.Pool.Exec(ctx, query, jobApplicationID, domain.ApplicationStatusDenied, reason, domain.ApplicationStatusPending)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deny job application", err)
	}
	if result.RowsAffected() == 0 {
		return r.finalizeConflict(ctx, jobApplicationID)
	}
	return nil
}

// ApproveJobApplication runs the approval's writes in one transaction: the
// application flips to Approved, the applicant loses the "User" role, gains
// "Employee", gets the offered salary, and joins the team. Any failure rolls
// the whole set back.
func (r *PgxJobApplicationRepository) ApproveJobApplication(ctx context.Context, jobApplicationID int64, applicantUserID string, salary decimal.Decimal, member domain.TeamMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE job_applications
		SET status = $2
		WHERE job_application_id = $1 AND status = $3;
	`
	result, err := tx.Exec(ctx, query, jobApplicationID, domain.ApplicationStatusApproved, domain.ApplicationStatusPending)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve job application", err)
	}
	if result.RowsAffected() == 0 {
		return r.finalizeConflict(ctx, jobApplicationID)
	}

	if err := r.userRepo.RemoveUserRoleInTx(ctx, tx, applicantUserID, domain.RoleUser); err != nil {
		return err
	}
	if err := r.userRepo.AddUserRoleInTx(ctx, tx, applicantUserID, domain.RoleEmployee); err != nil {
		return err
	}
	if err := r.userRepo.UpdateSalaryInTx(ctx, tx, applicantUserID, salary); err != nil {
		return err
	}
	if err := r.teamRepo.AddTeamMemberInTx(ctx, tx, member); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// finalizeConflict distinguishes an unknown application from one that already
// reached a terminal status.
func (r *PgxJobApplicationRepository) finalizeConflict(ctx context.Context, jobApplicationID int64) error {
	var current domain.JobApplicationStatus
	err := r.Pool.QueryRow(ctx, `SELECT status FROM job_applications WHERE job_application_id = $1;`, jobApplicationID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError("job application not found")
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to read job application status", err)
	}
	return apperrors.NewConflictError("job application is already " + string(current))
}
