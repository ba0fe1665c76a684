// Package http provides HTTP handlers for the application registry
// administration operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/httputil"
	"github.com/allisson/gatekeeper/internal/registry/http/dto"
	"github.com/allisson/gatekeeper/internal/registry/usecase"

	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// parseIDParam parses the ":id" route parameter as a positive integer.
func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id format: must be a positive integer")
	}
	return id, nil
}

// GroupHandler handles HTTP requests for application group administration.
type GroupHandler struct {
	groupUseCase usecase.GroupUseCase
	logger       *slog.Logger
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupUseCase usecase.GroupUseCase, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// CreateHandler creates a new application group.
// POST /v1/groups - Returns 201 Created with the command envelope.
func (h *GroupHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateGroupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	group, err := h.groupUseCase.Create(c.Request.Context(), httputil.ActorFromGin(c), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, httputil.CommandResponse{
		Success: true,
		Message: "application group created",
		ID:      group.ID,
	})
}

// AssignRolesHandler assigns a set of roles to a group.
// POST /v1/groups/:id/roles - Returns 200 OK with the command envelope.
// Roles the group already holds are skipped silently.
func (h *GroupHandler) AssignRolesHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.AssignRolesRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err = h.groupUseCase.AssignRoles(c.Request.Context(), httputil.ActorFromGin(c), groupID, req.RoleIDs)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "roles assigned to group",
		ID:      groupID,
	})
}

// DeleteHandler deletes a group that no application and no role references.
// DELETE /v1/groups/:id - Returns 200 OK with the command envelope, or 409
// with a message naming the blocking dependency kind.
func (h *GroupHandler) DeleteHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.groupUseCase.Delete(c.Request.Context(), groupID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "application group deleted",
		ID:      groupID,
	})
}
