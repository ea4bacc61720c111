package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/core/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jobApplicationHandler handles HTTP requests for the application lifecycle.
type jobApplicationHandler struct {
	jobApplicationService portssvc.JobApplicationSvcFacade
}

// newJobApplicationHandler creates a new jobApplicationHandler.
func newJobApplicationHandler(as portssvc.JobApplicationSvcFacade) *jobApplicationHandler {
	return &jobApplicationHandler{
		jobApplicationService: as,
	}
}

// registerJobApplicationRoutes registers routes to apply for postings and to
// process applications.
func registerJobApplicationRoutes(rg *gin.RouterGroup, jobApplicationService portssvc.JobApplicationSvcFacade) {
	h := newJobApplicationHandler(jobApplicationService)

	rg.POST("/job-postings/:job_posting_id/apply", middleware.RequireRoles(domain.RoleUser), h.applyForJob)

	applications := rg.Group("/job-applications", middleware.RequireRoles(domain.RoleRecruiter, domain.RoleHR, domain.RoleAdmin))
	{
		applications.POST("/:job_application_id/approve", h.approveApplication)
		applications.POST("/:job_application_id/deny", h.denyApplication)
		applications.GET("/log", h.listProcessedApplications)
	}
}

func jobApplicationIDParam(c *gin.Context) (int64, bool) {
	jobApplicationID, err := strconv.ParseInt(c.Param("job_application_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid job application ID"})
		return 0, false
	}
	return jobApplicationID, true
}

// applyForJob godoc
// @Summary Apply for a job posting
// @Description Submits an application for the calling user. One pending application per account.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param job_posting_id path int true "Job posting ID"
// @Param application body dto.ApplyJobRequest true "Resume link"
// @Success 201 {object} dto.JobApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Job posting not found"
// @Failure 409 {object} ErrorResponse "A pending application already exists"
// @Security BearerAuth
// @Router /job-postings/{job_posting_id}/apply [post]
func (h *jobApplicationHandler) applyForJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobPostingID, ok := jobPostingIDParam(c)
	if !ok {
		return
	}

	var req dto.ApplyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	applicantEmail, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		logger.Error("Applicant email not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	application, err := h.jobApplicationService.ApplyForJob(c.Request.Context(), jobPostingID, applicantEmail, req.ResumeURL)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job posting not found"})
			return
		}
		if errors.Is(err, services.ErrDuplicatePendingApplication) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "You already have a pending application"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to apply for job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply for job"})
		return
	}

	logger.Info("Job application submitted",
		slog.Int64("job_application_id", application.JobApplicationID),
		slog.Int64("job_posting_id", jobPostingID),
	)
	c.JSON(http.StatusCreated, dto.ToJobApplicationResponse(application))
}

// approveApplication godoc
// @Summary Approve a job application
// @Description Hires the applicant: grants the Employee role, sets the salary and adds them to the team in one step.
// @Tags job-applications
// @Accept json
// @Param job_application_id path int true "Job application ID"
// @Param terms body dto.ApproveApplicationRequest true "Salary and team"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application already processed"
// @Security BearerAuth
// @Router /job-applications/{job_application_id}/approve [post]
func (h *jobApplicationHandler) approveApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobApplicationID, ok := jobApplicationIDParam(c)
	if !ok {
		return
	}

	var req dto.ApproveApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.jobApplicationService.ApproveApplication(c.Request.Context(), jobApplicationID, req.Salary, req.TeamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job application not found"})
			return
		}
		if errors.Is(err, services.ErrApplicationFinalized) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Job application has already been processed"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to approve job application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve job application"})
		return
	}

	logger.Info("Job application approved", slog.Int64("job_application_id", jobApplicationID))
	c.Status(http.StatusNoContent)
}

// denyApplication godoc
// @Summary Deny a job application
// @Tags job-applications
// @Accept json
// @Param job_application_id path int true "Job application ID"
// @Param reason body dto.DenyApplicationRequest true "Denial reason"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application already processed"
// @Security BearerAuth
// @Router /job-applications/{job_application_id}/deny [post]
func (h *jobApplicationHandler) denyApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobApplicationID, ok := jobApplicationIDParam(c)
	if !ok {
		return
	}

	var req dto.DenyApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.jobApplicationService.DenyApplication(c.Request.Context(), jobApplicationID, req.DenialReason)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job application not found"})
			return
		}
		if errors.Is(err, services.ErrApplicationFinalized) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Job application has already been processed"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to deny job application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deny job application"})
		return
	}

	logger.Info("Job application denied", slog.Int64("job_application_id", jobApplicationID))
	c.Status(http.StatusNoContent)
}

// listProcessedApplications godoc
// @Summary List processed applications
// @Description Returns the approved/denied audit log, filterable by posting title, posted date, recruiter and applicant name.
// @Tags job-applications
// @Produce json
// @Param title query string false "Posting title fragment"
// @Param postedDate query string false "Posting date (YYYY-MM-DD)"
// @Param recruiter query string false "Recruiter name or email fragment"
// @Param applicantName query string false "Applicant name fragment"
// @Success 200 {object} dto.ListJobApplicationsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /job-applications/log [get]
func (h *jobApplicationHandler) listProcessedApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ApplicationLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.ApplicationLogFilter{
		Title:         params.Title,
		Recruiter:     params.Recruiter,
		ApplicantName: params.ApplicantName,
	}
	if params.PostedDate != "" {
		postedDate, err := time.Parse("2006-01-02", params.PostedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid postedDate, expected YYYY-MM-DD"})
			return
		}
		filter.PostedDate = &postedDate
	}

	applications, err := h.jobApplicationService.ListProcessedApplications(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list processed applications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list processed applications"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobApplicationsResponse(applications))
}
