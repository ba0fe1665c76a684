package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an Application.
type Status string

// Application lifecycle states. New applications always start Pending and move
// to Approved or Rejected only by explicit administrative action. Transitions
// between Approved and Rejected are unrestricted in both directions; only
// same-to-same transitions are rejected.
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// CredentialPlaceholder is the literal clients may send to request a
// system-generated credential, in addition to omitting the field entirely.
// Matched case-insensitively.
const CredentialPlaceholder = "null"

// Application is a registered API consumer identified by an AppID/AppKey
// credential pair. GroupID is nil while the application is ungrouped; a group
// may only be assigned while the application is Approved.
type Application struct {
	AuditFields
	AppID   string
	AppKey  string
	Name    string
	Status  Status
	GroupID *int64
}

// OrGeneratedCredential returns the caller-supplied credential verbatim, or a
// fresh random token when the value is blank or the "null" placeholder.
func OrGeneratedCredential(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, CredentialPlaceholder) {
		return uuid.NewString()
	}
	return value
}
