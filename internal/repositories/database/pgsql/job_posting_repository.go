package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxJobPostingRepository struct {
	BaseRepository
}

// newPgxJobPostingRepository creates a new repository for job posting data.
func newPgxJobPostingRepository(pool PgxPool) portsrepo.JobPostingRepositoryFacade {
	return &PgxJobPostingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJobPostingRepository implements portsrepo.JobPostingRepositoryFacade
var _ portsrepo.JobPostingRepositoryFacade = (*PgxJobPostingRepository)(nil)

var FULL_JOB_POSTING_SELECT_QUERY = `
SELECT
	jp.job_posting_id, jp.title, jp.description, jp.posted_date, jp.recruiter_id
FROM job_postings jp
`

func (r *PgxJobPostingRepository) getJobPostings(ctx context.Context, filterQuery string, args ...any) ([]domain.JobPosting, error) {
	query := FULL_JOB_POSTING_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query job postings", err)
	}
	defer rows.Close()
	postings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.JobPosting])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.JobPosting{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect job posting rows", err)
	}
	return postings, nil
}

func (r *PgxJobPostingRepository) FindJobPostingByID(ctx context.Context, jobPostingID int64) (*domain.JobPosting, error) {
	postings, err := r.getJobPostings(ctx, `WHERE jp.job_posting_id = $1`, jobPostingID)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &postings[0], nil
}

func (r *PgxJobPostingRepository) ListJobPostings(ctx context.Context) ([]domain.JobPosting, error) {
	return r.getJobPostings(ctx, `ORDER BY jp.posted_date DESC;`)
}

func (r *PgxJobPostingRepository) SaveJobPosting(ctx context.Context, posting domain.JobPosting) (*domain.JobPosting, error) {
	query := `
		INSERT INTO job_postings (title, description, posted_date, recruiter_id)
		VALUES ($1, $2, $3, $4)
		RETURNING job_posting_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		posting.Title,
		posting.Description,
		posting.PostedDate,
		posting.RecruiterID,
	).Scan(&posting.JobPostingID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save job posting", err)
	}
	return &posting, nil
}

func (r *PgxJobPostingRepository) UpdateJobPosting(ctx context.Context, posting domain.JobPosting) error {
	query := `
		UPDATE job_postings
		SET title = $2, description = $3
		WHERE job_posting_id = $1;
	`
	result, err := r.Pool.Exec(ctx, query, posting.JobPostingID, posting.Title, posting.Description)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update job posting", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("job posting not found")
	}
	return nil
}

func (r *PgxJobPostingRepository) DeleteJobPosting(ctx context.Context, jobPostingID int64) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM job_postings WHERE job_posting_id = $1;`, jobPostingID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete job posting", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("job posting not found")
	}
	return nil
}
