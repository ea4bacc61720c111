package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jobPostingHandler handles HTTP requests related to job postings.
type jobPostingHandler struct {
	jobPostingService     portssvc.JobPostingSvcFacade
	jobApplicationService portssvc.JobApplicationSvcFacade
}

// newJobPostingHandler creates a new jobPostingHandler.
func newJobPostingHandler(ps portssvc.JobPostingSvcFacade, as portssvc.JobApplicationSvcFacade) *jobPostingHandler {
	return &jobPostingHandler{
		jobPostingService:     ps,
		jobApplicationService: as,
	}
}

// registerJobPostingRoutes registers routes for postings and the
// posting-scoped application views.
func registerJobPostingRoutes(rg *gin.RouterGroup, jobPostingService portssvc.JobPostingSvcFacade, jobApplicationService portssvc.JobApplicationSvcFacade) {
	h := newJobPostingHandler(jobPostingService, jobApplicationService)

	postings := rg.Group("/job-postings")
	{
		postings.GET("", h.listJobPostings)
		postings.GET("/:job_posting_id", h.getJobPosting)

		postings.POST("", middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin), h.createJobPosting)
		postings.PUT("/:job_posting_id", middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin), h.updateJobPosting)
		postings.DELETE("/:job_posting_id", middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin), h.deleteJobPosting)

		postings.GET("/:job_posting_id/applicants", middleware.RequireRoles(domain.RoleRecruiter, domain.RoleHR, domain.RoleAdmin), h.listApplicants)
	}
}

func jobPostingIDParam(c *gin.Context) (int64, bool) {
	jobPostingID, err := strconv.ParseInt(c.Param("job_posting_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid job posting ID"})
		return 0, false
	}
	return jobPostingID, true
}

// listJobPostings godoc
// @Summary List job postings
// @Tags job-postings
// @Produce json
// @Success 200 {object} dto.ListJobPostingsResponse
// @Security BearerAuth
// @Router /job-postings [get]
func (h *jobPostingHandler) listJobPostings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	postings, err := h.jobPostingService.ListJobPostings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list job postings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list job postings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobPostingsResponse(postings))
}

// getJobPosting godoc
// @Summary Get a job posting
// @Tags job-postings
// @Produce json
// @Param job_posting_id path int true "Job posting ID"
// @Success 200 {object} dto.JobPostingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /job-postings/{job_posting_id} [get]
func (h *jobPostingHandler) getJobPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobPostingID, ok := jobPostingIDParam(c)
	if !ok {
		return
	}

	posting, err := h.jobPostingService.GetJobPostingByID(c.Request.Context(), jobPostingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job posting not found"})
			return
		}
		logger.Error("Failed to get job posting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get job posting"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJobPostingResponse(posting))
}

// createJobPosting godoc
// @Summary Publish a job posting
// @Tags job-postings
// @Accept json
// @Produce json
// @Param posting body dto.CreateJobPostingRequest true "Posting details"
// @Success 201 {object} dto.JobPostingResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /job-postings [post]
func (h *jobPostingHandler) createJobPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	recruiterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Recruiter ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	posting, err := h.jobPostingService.CreateJobPosting(c.Request.Context(), req, recruiterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create job posting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create job posting"})
		return
	}

	logger.Info("Job posting created", slog.Int64("job_posting_id", posting.JobPostingID))
	c.JSON(http.StatusCreated, dto.ToJobPostingResponse(posting))
}

// updateJobPosting godoc
// @Summary Update a job posting
// @Tags job-postings
// @Accept json
// @Param job_posting_id path int true "Job posting ID"
// @Param posting body dto.UpdateJobPostingRequest true "New posting text"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /job-postings/{job_posting_id} [put]
func (h *jobPostingHandler) updateJobPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobPostingID, ok := jobPostingIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.jobPostingService.UpdateJobPosting(c.Request.Context(), jobPostingID, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job posting not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update job posting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update job posting"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteJobPosting godoc
// @Summary Delete a job posting
// @Tags job-postings
// @Param job_posting_id path int true "Job posting ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /job-postings/{job_posting_id} [delete]
func (h *jobPostingHandler) deleteJobPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobPostingID, ok := jobPostingIDParam(c)
	if !ok {
		return
	}

	if err := h.jobPostingService.DeleteJobPosting(c.Request.Context(), jobPostingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job posting not found"})
			return
		}
		logger.Error("Failed to delete job posting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete job posting"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listApplicants godoc
// @Summary List pending applicants for a posting
// @Tags job-postings
// @Produce json
// @Param job_posting_id path int true "Job posting ID"
// @Success 200 {object} dto.ListJobApplicationsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /job-postings/{job_posting_id}/applicants [get]
func (h *jobPostingHandler) listApplicants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobPostingID, ok := jobPostingIDParam(c)
	if !ok {
		return
	}

	applications, err := h.jobApplicationService.ListApplicants(c.Request.Context(), jobPostingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job posting not found"})
			return
		}
		logger.Error("Failed to list applicants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list applicants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobApplicationsResponse(applications))
}
