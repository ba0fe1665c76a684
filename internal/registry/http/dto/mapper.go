package dto

import (
	"github.com/allisson/gatekeeper/internal/registry/domain"
)

// MapApplicationToCreateResponse converts a freshly registered application to
// its creation response, including the one-time credential exposure.
func MapApplicationToCreateResponse(application *domain.Application, message string) CreateApplicationResponse {
	return CreateApplicationResponse{
		Success: true,
		Message: message,
		ID:      application.ID,
		Name:    application.Name,
		AppID:   application.AppID,
		AppKey:  application.AppKey,
		Status:  string(application.Status),
	}
}

// MapApplicationsToPendingResponse converts applications to the pending listing view.
func MapApplicationsToPendingResponse(applications []*domain.Application) ListPendingApplicationsResponse {
	summaries := make([]PendingApplicationResponse, 0, len(applications))
	for _, application := range applications {
		summaries = append(summaries, PendingApplicationResponse{
			ID:     application.ID,
			Name:   application.Name,
			Status: string(application.Status),
			AppID:  application.AppID,
		})
	}
	return ListPendingApplicationsResponse{
		Data: summaries,
	}
}
