package domain

import "time"

// JobPosting is an opening published by a recruiter.
type JobPosting struct {
	JobPostingID int64     `json:"jobPostingID" db:"job_posting_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	PostedDate   time.Time `json:"postedDate" db:"posted_date"`
	RecruiterID  string    `json:"recruiterID" db:"recruiter_id"`
}
