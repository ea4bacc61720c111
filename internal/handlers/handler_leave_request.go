package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/core/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaveRequestHandler handles HTTP requests for the leave workflow.
type leaveRequestHandler struct {
	leaveRequestService portssvc.LeaveRequestSvcFacade
}

// newLeaveRequestHandler creates a new leaveRequestHandler.
func newLeaveRequestHandler(ls portssvc.LeaveRequestSvcFacade) *leaveRequestHandler {
	return &leaveRequestHandler{
		leaveRequestService: ls,
	}
}

// RegisterLeaveRequestRoutes registers routes for submitting and reviewing
// leave requests.
func RegisterLeaveRequestRoutes(rg *gin.RouterGroup, leaveRequestService portssvc.LeaveRequestSvcFacade) {
	h := newLeaveRequestHandler(leaveRequestService)

	leave := rg.Group("/leave-requests")
	{
		leave.POST("", middleware.RequireRoles(domain.RoleEmployee), h.submitLeaveRequest)
		leave.GET("/mine", middleware.RequireRoles(domain.RoleEmployee), h.listOwnLeaveRequests)
		leave.GET("/review", middleware.RequireRoles(domain.RoleManager, domain.RoleAdmin), h.listForReview)
		leave.POST("/:leave_request_id/decision", middleware.RequireRoles(domain.RoleManager, domain.RoleAdmin), h.decideLeaveRequest)
	}
}

// submitLeaveRequest godoc
// @Summary Submit a leave request
// @Description Submits a leave request over an inclusive date range for the calling employee.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequestRequest true "Leave date range"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid range or employee not on a team"
// @Failure 409 {object} ErrorResponse "Overlap or team capacity reached"
// @Security BearerAuth
// @Router /leave-requests [post]
func (h *leaveRequestHandler) submitLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Employee ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.leaveRequestService.SubmitLeaveRequest(c.Request.Context(), employeeID, req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, services.ErrNotOnTeam) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "You must belong to a team to request leave"})
			return
		}
		if errors.Is(err, services.ErrOverlappingRequest) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "You already have a leave request over these dates"})
			return
		}
		if errors.Is(err, services.ErrTeamCapacityExceeded) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Too many team members are already on approved leave over these dates"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to submit leave request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit leave request"})
		return
	}

	logger.Info("Leave request submitted", slog.Int64("leave_request_id", created.LeaveRequestID))
	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(created))
}

// listOwnLeaveRequests godoc
// @Summary List own upcoming leave requests
// @Description Returns the caller's leave requests whose end date has not passed, soonest first.
// @Tags leave-requests
// @Produce json
// @Success 200 {object} dto.ListLeaveRequestsResponse
// @Security BearerAuth
// @Router /leave-requests/mine [get]
func (h *leaveRequestHandler) listOwnLeaveRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Employee ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requests, err := h.leaveRequestService.ListUpcomingLeaveRequests(c.Request.Context(), employeeID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to list own leave requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leave requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveRequestsResponse(requests))
}

// listForReview godoc
// @Summary List leave requests awaiting the caller's review
// @Description Admins see every pending request; managers see the requests assigned to them.
// @Tags leave-requests
// @Produce json
// @Success 200 {object} dto.ListLeaveRequestsResponse
// @Security BearerAuth
// @Router /leave-requests/review [get]
func (h *leaveRequestHandler) listForReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reviewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Reviewer ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	elevated := middleware.HasRole(c, domain.RoleAdmin)
	requests, err := h.leaveRequestService.ListLeaveRequestsForReview(c.Request.Context(), reviewerID, elevated)
	if err != nil {
		logger.Error("Failed to list leave requests for review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leave requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveRequestsResponse(requests))
}

// decideLeaveRequest godoc
// @Summary Approve or reject a leave request
// @Description Applies a terminal decision. Managers can only decide requests assigned to them; admins can decide any.
// @Tags leave-requests
// @Accept json
// @Param leave_request_id path int true "Leave request ID"
// @Param decision body dto.DecideLeaveRequestRequest true "Approve or Reject"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not the assigned manager"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /leave-requests/{leave_request_id}/decision [post]
func (h *leaveRequestHandler) decideLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	leaveRequestID, err := strconv.ParseInt(c.Param("leave_request_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid leave request ID"})
		return
	}

	var req dto.DecideLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reviewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Reviewer ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	elevated := middleware.HasRole(c, domain.RoleAdmin)
	err = h.leaveRequestService.DecideLeaveRequest(c.Request.Context(), leaveRequestID, reviewerID, elevated, domain.LeaveDecision(req.Decision))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Leave request not found"})
			return
		}
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only the assigned manager can decide this request"})
			return
		}
		if errors.Is(err, services.ErrRequestFinalized) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Leave request has already been decided"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to decide leave request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to decide leave request"})
		return
	}

	logger.Info("Leave request decided",
		slog.Int64("leave_request_id", leaveRequestID),
		slog.String("decision", req.Decision),
	)
	c.Status(http.StatusNoContent)
}
