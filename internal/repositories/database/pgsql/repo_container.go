package pgsql

import (
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	teamRepo := newPgxTeamRepository(dbPool)
	leaveRequestRepo := newPgxLeaveRequestRepository(dbPool)
	jobPostingRepo := newPgxJobPostingRepository(dbPool)
	jobApplicationRepo := newPgxJobApplicationRepository(dbPool, userRepo, teamRepo)

	return portsrepo.RepositoryProvider{
		UserRepo:           userRepo,
		TeamRepo:           teamRepo,
		LeaveRequestRepo:   leaveRequestRepo,
		JobPostingRepo:     jobPostingRepo,
		JobApplicationRepo: jobApplicationRepo,
	}
}
