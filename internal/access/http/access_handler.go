// Package http provides the HTTP handler for credential-based access resolution.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/access/http/dto"
	"github.com/allisson/gatekeeper/internal/access/usecase"
	"github.com/allisson/gatekeeper/internal/httputil"

	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// AccessHandler handles access resolution requests.
type AccessHandler struct {
	accessUseCase usecase.AccessUseCase
	logger        *slog.Logger
}

// NewAccessHandler creates a new AccessHandler
func NewAccessHandler(accessUseCase usecase.AccessUseCase, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		accessUseCase: accessUseCase,
		logger:        logger,
	}
}

// ResolveHandler resolves a credential pair to an authorization answer.
// POST /v1/access - The credential pair is the caller's authentication.
// Returns 200 OK with the resolved group and roles, 401 for empty or unknown
// credentials, 403 for a known but unapproved application.
func (h *AccessHandler) ResolveHandler(c *gin.Context) {
	var req dto.ResolveAccessRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.accessUseCase.Resolve(c.Request.Context(), req.AppID, req.AppKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccessResultToResponse(result))
}
