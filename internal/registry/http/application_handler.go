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

// ApplicationHandler handles HTTP requests for application administration.
type ApplicationHandler struct {
	applicationUseCase usecase.ApplicationUseCase
	logger             *slog.Logger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationUseCase usecase.ApplicationUseCase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: applicationUseCase,
		logger:             logger,
	}
}

// CreateHandler registers a new application in status Pending.
// POST /v1/applications - Returns 201 Created including the stored credential
// pair; generated credentials are shown here and never again.
func (h *ApplicationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateApplicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := usecase.CreateApplicationInput{
		Name:   req.Name,
		AppID:  req.AppID,
		AppKey: req.AppKey,
	}

	application, err := h.applicationUseCase.Create(c.Request.Context(), httputil.ActorFromGin(c), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapApplicationToCreateResponse(application, "application created"))
}

// ListPendingHandler lists the applications awaiting review.
// GET /v1/applications/pending - Returns 200 OK with summary views.
func (h *ApplicationHandler) ListPendingHandler(c *gin.Context) {
	applications, err := h.applicationUseCase.ListPending(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationsToPendingResponse(applications))
}

// ApproveHandler approves an application.
// PUT /v1/applications/:id/approve - Returns 200 OK with the command
// envelope, or 409 when the application is already approved.
func (h *ApplicationHandler) ApproveHandler(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	application, err := h.applicationUseCase.Approve(c.Request.Context(), httputil.ActorFromGin(c), applicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "application approved",
		ID:      application.ID,
	})
}

// RejectHandler rejects an application.
// PUT /v1/applications/:id/reject - Returns 200 OK with the command
// envelope, or 409 when the application is already rejected.
func (h *ApplicationHandler) RejectHandler(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	application, err := h.applicationUseCase.Reject(c.Request.Context(), httputil.ActorFromGin(c), applicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "application rejected",
		ID:      application.ID,
	})
}

// AssignGroupHandler assigns an approved application to a group, silently
// replacing any prior assignment.
// PUT /v1/applications/:id/group - Returns 200 OK with the command envelope.
func (h *ApplicationHandler) AssignGroupHandler(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.AssignGroupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	application, err := h.applicationUseCase.AssignToGroup(
		c.Request.Context(),
		httputil.ActorFromGin(c),
		applicationID,
		req.GroupID,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "application assigned to group",
		ID:      application.ID,
	})
}

// DeleteHandler deletes an application unconditionally, dropping any group
// back-reference without touching the group.
// DELETE /v1/applications/:id - Returns 200 OK with the command envelope.
func (h *ApplicationHandler) DeleteHandler(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.applicationUseCase.Delete(c.Request.Context(), applicationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.CommandResponse{
		Success: true,
		Message: "application deleted",
		ID:      applicationID,
	})
}
