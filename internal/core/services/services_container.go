package services

import (
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Team = NewTeamService(repos.TeamRepo, repos.UserRepo)
	container.LeaveRequest = NewLeaveRequestService(repos.LeaveRequestRepo, repos.TeamRepo, cfg.LeaveCapacityGuard)
	container.JobPosting = NewJobPostingService(repos.JobPostingRepo)
	container.JobApplication = NewJobApplicationService(repos.JobApplicationRepo, repos.JobPostingRepo, repos.UserRepo, repos.TeamRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}
