package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/httputil"
	"github.com/allisson/gatekeeper/internal/registry/http/dto"
	"github.com/allisson/gatekeeper/internal/registry/usecase"

	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// RoleHandler handles HTTP requests for role administration.
type RoleHandler struct {
	roleUseCase usecase.RoleUseCase
	logger      *slog.Logger
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roleUseCase usecase.RoleUseCase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		roleUseCase: roleUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new role.
// POST /v1/roles - Returns 201 Created with the command envelope.
func (h *RoleHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRoleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	role, err := h.roleUseCase.Create(c.Request.Context(), httputil.ActorFromGin(c), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, httputil.CommandResponse{
		Success: true,
		Message: "role created",
		ID:      role.ID,
	})
}

// DeleteHandler deletes a role that no group references.
// DELETE /v1/roles/:id - Returns 200 OK with the command envelope, or 409
// while any group still holds the role.
func (h *RoleHandler) DeleteHandler(c *gin.Context) {
	roleID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.roleUseCase.Delete(c.Request.Context(), roleID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "role deleted",
		ID:      roleID,
	})
}
