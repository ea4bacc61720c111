package dto

import (
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyJobRequest submits an application against a posting. The applicant is
// identified by the authenticated caller's email.
type ApplyJobRequest struct {
	ResumeURL string `json:"resumeURL" binding:"required,url"`
}

// ApproveApplicationRequest carries the approval's hiring terms.
type ApproveApplicationRequest struct {
	Salary decimal.Decimal `json:"salary" binding:"required"`
	TeamID int64           `json:"teamID" binding:"required"`
}

// DenyApplicationRequest carries the mandatory denial reason.
type DenyApplicationRequest struct {
	DenialReason string `json:"denialReason" binding:"required"`
}

// ApplicationLogParams defines the audit log's query filters.
type ApplicationLogParams struct {
	Title         string `form:"title"`
	PostedDate    string `form:"postedDate"` // YYYY-MM-DD
	Recruiter     string `form:"recruiter"`
	ApplicantName string `form:"applicantName"`
}

// JobApplicationResponse is the outward representation of an application.
type JobApplicationResponse struct {
	JobApplicationID int64   `json:"jobApplicationID"`
	JobPostingID     int64   `json:"jobPostingID"`
	ApplicantName    string  `json:"applicantName"`
	ApplicantEmail   string  `json:"applicantEmail"`
	ResumeURL        string  `json:"resumeURL"`
	Status           string  `json:"status"`
	DenialReason     *string `json:"denialReason,omitempty"`
}

// ListJobApplicationsResponse wraps a list of applications.
type ListJobApplicationsResponse struct {
	JobApplications []JobApplicationResponse `json:"jobApplications"`
}

// ToJobApplicationResponse converts a domain.JobApplication to its response DTO.
func ToJobApplicationResponse(ja *domain.JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		JobApplicationID: ja.JobApplicationID,
		JobPostingID:     ja.JobPostingID,
		ApplicantName:    ja.ApplicantName,
		ApplicantEmail:   ja.ApplicantEmail,
		ResumeURL:        ja.ResumeURL,
		Status:           string(ja.Status),
		DenialReason:     ja.DenialReason,
	}
}

// ToListJobApplicationsResponse converts a slice of domain.JobApplication.
func ToListJobApplicationsResponse(applications []domain.JobApplication) ListJobApplicationsResponse {
	responses := make([]JobApplicationResponse, len(applications))
	for i := range applications {
		responses[i] = ToJobApplicationResponse(&applications[i])
	}
	return ListJobApplicationsResponse{JobApplications: responses}
}
