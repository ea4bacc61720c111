package domain

// JobApplicationStatus is the lifecycle state of a job application.
// Pending -> Approved | Denied; both outcomes are terminal.
type JobApplicationStatus string

const (
	ApplicationStatusPending  JobApplicationStatus = "Pending"
	ApplicationStatusApproved JobApplicationStatus = "Approved"
	ApplicationStatusDenied   JobApplicationStatus = "Denied"
)

// JobApplication is a candidate's application against a posting.
// ApplicantName is a snapshot of the user's name at apply time; matching back
// to the user is always done through ApplicantEmail.
type JobApplication struct {
	JobApplicationID int64                `json:"jobApplicationID" db:"job_application_id"`
	JobPostingID     int64                `json:"jobPostingID" db:"job_posting_id"`
	ApplicantName    string               `json:"applicantName" db:"applicant_name"`
	ApplicantEmail   string               `json:"applicantEmail" db:"applicant_email"`
	ResumeURL        string               `json:"resumeURL" db:"resume_url"`
	Status           JobApplicationStatus `json:"status" db:"status"`
	DenialReason     *string              `json:"denialReason,omitempty" db:"denial_reason"`
}

// IsFinal reports whether the application has reached a terminal status.
func (ja JobApplication) IsFinal() bool {
	return ja.Status != ApplicationStatusPending
}
