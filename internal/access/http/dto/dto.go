// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/gatekeeper/internal/access/domain"
)

// ResolveAccessRequest carries the credential pair to resolve. The pair is
// the caller's authentication; no other credential is required.
type ResolveAccessRequest struct {
	AppID  string `json:"app_id"`
	AppKey string `json:"app_key"`
}

// Validate checks if the resolve access request is shaped correctly. Empty
// credentials are not a validation error; the use case maps them to an
// unauthorized answer so the response is identical to an unknown pair.
func (r *ResolveAccessRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AppID, validation.Length(0, 255)),
		validation.Field(&r.AppKey, validation.Length(0, 255)),
	)
}

// GroupResponse is the resolved group portion of an access response.
type GroupResponse struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// ResolveAccessResponse is the positive answer to an access request. Group is
// null for an ungrouped application.
type ResolveAccessResponse struct {
	AppName    string         `json:"app_name"`
	IsApproved bool           `json:"is_approved"`
	Group      *GroupResponse `json:"group"`
}

// MapAccessResultToResponse converts a domain access result to an API response.
func MapAccessResultToResponse(result *domain.AccessResult) ResolveAccessResponse {
	response := ResolveAccessResponse{
		AppName:    result.AppName,
		IsApproved: result.IsApproved,
	}
	if result.Group != nil {
		response.Group = &GroupResponse{
			Name:  result.Group.Name,
			Roles: result.Group.Roles,
		}
	}
	return response
}
