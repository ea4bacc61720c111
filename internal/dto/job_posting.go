package dto

import (
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
)

// CreateJobPostingRequest publishes a new opening.
type CreateJobPostingRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=100"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
}

// UpdateJobPostingRequest edits an opening's text.
type UpdateJobPostingRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=100"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
}

// JobPostingResponse is the outward representation of a posting.
type JobPostingResponse struct {
	JobPostingID int64     `json:"jobPostingID"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PostedDate   time.Time `json:"postedDate"`
	RecruiterID  string    `json:"recruiterID"`
}

// ListJobPostingsResponse wraps a list of postings.
type ListJobPostingsResponse struct {
	JobPostings []JobPostingResponse `json:"jobPostings"`
}

// ToJobPostingResponse converts a domain.JobPosting to its response DTO.
func ToJobPostingResponse(jp *domain.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		JobPostingID: jp.JobPostingID,
		Title:        jp.Title,
		Description:  jp.Description,
		PostedDate:   jp.PostedDate,
		RecruiterID:  jp.RecruiterID,
	}
}

// ToListJobPostingsResponse converts a slice of domain.JobPosting.
func ToListJobPostingsResponse(postings []domain.JobPosting) ListJobPostingsResponse {
	responses := make([]JobPostingResponse, len(postings))
	for i := range postings {
		responses[i] = ToJobPostingResponse(&postings[i])
	}
	return ListJobPostingsResponse{JobPostings: responses}
}
