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

// teamHandler handles HTTP requests related to teams and memberships.
type teamHandler struct {
	teamService portssvc.TeamSvcFacade
}

// newTeamHandler creates a new teamHandler.
func newTeamHandler(ts portssvc.TeamSvcFacade) *teamHandler {
	return &teamHandler{
		teamService: ts,
	}
}

// registerTeamRoutes registers routes related to teams and their members.
func registerTeamRoutes(rg *gin.RouterGroup, teamService portssvc.TeamSvcFacade) {
	h := newTeamHandler(teamService)

	teams := rg.Group("/teams")
	{
		teams.GET("", h.listTeams)
		teams.GET("/:team_id", h.getTeam)

		teams.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createTeam)
		teams.PUT("/:team_id", middleware.RequireRoles(domain.RoleAdmin), h.updateTeam)
		teams.DELETE("/:team_id", middleware.RequireRoles(domain.RoleAdmin), h.deleteTeam)

		teams.POST("/:team_id/members", middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager), h.addTeamMember)
		teams.DELETE("/:team_id/members/:user_id", middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager), h.removeTeamMember)
	}
}

func teamIDParam(c *gin.Context) (int64, bool) {
	teamID, err := strconv.ParseInt(c.Param("team_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return 0, false
	}
	return teamID, true
}

// listTeams godoc
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {object} dto.ListTeamsResponse
// @Security BearerAuth
// @Router /teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list teams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list teams"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamsResponse(teams))
}

// getTeam godoc
// @Summary Get a team with its members
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} dto.TeamDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{team_id} [get]
func (h *teamHandler) getTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	team, members, err := h.teamService.GetTeamDetails(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team not found"})
			return
		}
		logger.Error("Failed to get team", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get team"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDetailResponse(team, members))
}

// createTeam godoc
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [post]
func (h *teamHandler) createTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Manager not found"})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Team name already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create team", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamResponse(team))
}

// updateTeam godoc
// @Summary Update a team
// @Description Renames a team or re-points its manager.
// @Tags teams
// @Accept json
// @Param team_id path int true "Team ID"
// @Param team body dto.UpdateTeamRequest true "New team details"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{team_id} [put]
func (h *teamHandler) updateTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.teamService.UpdateTeam(c.Request.Context(), teamID, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team not found"})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Team name already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update team", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update team"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteTeam godoc
// @Summary Delete a team
// @Tags teams
// @Param team_id path int true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{team_id} [delete]
func (h *teamHandler) deleteTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(c.Request.Context(), teamID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team not found"})
			return
		}
		logger.Error("Failed to delete team", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete team"})
		return
	}

	c.Status(http.StatusNoContent)
}

// addTeamMember godoc
// @Summary Add a user to a team
// @Tags teams
// @Accept json
// @Param team_id path int true "Team ID"
// @Param member body dto.AddTeamMemberRequest true "User to add"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{team_id}/members [post]
func (h *teamHandler) addTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.teamService.AddTeamMember(c.Request.Context(), teamID, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team or user not found"})
			return
		}
		logger.Error("Failed to add team member", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add team member"})
		return
	}

	c.Status(http.StatusNoContent)
}

// removeTeamMember godoc
// @Summary Remove a user from a team
// @Tags teams
// @Param team_id path int true "Team ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{team_id}/members/{user_id} [delete]
func (h *teamHandler) removeTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	userID := c.Param("user_id")

	if err := h.teamService.RemoveTeamMember(c.Request.Context(), teamID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Membership not found"})
			return
		}
		logger.Error("Failed to remove team member", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove team member"})
		return
	}

	c.Status(http.StatusNoContent)
}
