package domain

// Role names are stored in the roles table and referenced by name everywhere,
// matching how the identity store assigns them.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleHR        Role = "HR"
	RoleRecruiter Role = "Recruiter"
	RoleEmployee  Role = "Employee"
	// RoleUser is the generic applicant role; it is swapped for RoleEmployee
	// when a job application is approved.
	RoleUser Role = "User"
)
