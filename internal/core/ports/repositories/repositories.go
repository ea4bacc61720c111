package repositories

// RepositoryProvider groups the concrete repositories handed to the service
// container.
type RepositoryProvider struct {
	UserRepo           UserRepositoryWithTx
	TeamRepo           TeamRepositoryWithTx
	LeaveRequestRepo   LeaveRequestRepositoryFacade
	JobPostingRepo     JobPostingRepositoryFacade
	JobApplicationRepo JobApplicationRepositoryFacade
}
