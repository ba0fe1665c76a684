// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/gatekeeper/internal/validation"
)

// CreateGroupRequest contains the parameters for creating an application group.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create group request is valid.
func (r *CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// CreateRoleRequest contains the parameters for creating a role.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create role request is valid.
func (r *CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// CreateApplicationRequest contains the parameters for registering an
// application. AppID and AppKey may be omitted, blank or the literal "null";
// in those cases the server generates random credentials.
type CreateApplicationRequest struct {
	Name   string `json:"name"`
	AppID  string `json:"app_id"`
	AppKey string `json:"app_key"`
}

// Validate checks if the create application request is valid.
func (r *CreateApplicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.AppID, validation.Length(0, 255)),
		validation.Field(&r.AppKey, validation.Length(0, 255)),
	)
}

// AssignGroupRequest contains the target group for an application assignment.
type AssignGroupRequest struct {
	GroupID int64 `json:"group_id"`
}

// Validate checks if the assign group request is valid.
func (r *AssignGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.GroupID, validation.Required, validation.Min(1)),
	)
}

// AssignRolesRequest contains the role set to assign to a group.
type AssignRolesRequest struct {
	RoleIDs []int64 `json:"role_ids"`
}

// Validate checks if the assign roles request is valid.
func (r *AssignRolesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RoleIDs,
			validation.Required,
			validation.Each(validation.Min(1)),
		),
	)
}
