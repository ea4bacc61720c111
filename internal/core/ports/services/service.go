package services

// ServiceContainer groups all service facades for dependency injection into
// the handler layer.
type ServiceContainer struct {
	User           UserSvcFacade
	Team           TeamSvcFacade
	LeaveRequest   LeaveRequestSvcFacade
	JobPosting     JobPostingSvcFacade
	JobApplication JobApplicationSvcFacade
	Auth           AuthSvcFacade
}
