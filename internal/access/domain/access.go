// Package domain defines the read models of credential-based access resolution.
package domain

import (
	"github.com/allisson/gatekeeper/internal/errors"
	registry "github.com/allisson/gatekeeper/internal/registry/domain"
)

// Access resolution errors. Unknown credential pairs map to the same error as
// missing credentials so a caller cannot probe which app ids exist.
var (
	// ErrInvalidCredentials covers empty credentials and unknown credential pairs alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid application credentials")

	// ErrApplicationNotApproved indicates the credentials matched but the
	// application has not been approved.
	ErrApplicationNotApproved = errors.Wrap(errors.ErrForbidden, "application is not approved")
)

// ApplicationGrant is the eagerly-loaded view of one application used to
// answer an access request: its name, lifecycle status and, when grouped,
// the group name with the flattened role names held by that group.
type ApplicationGrant struct {
	Name   string
	Status registry.Status
	Group  *GroupGrant
}

// GroupGrant is the resolved group portion of an ApplicationGrant. Roles is
// empty (not nil) when the group holds no roles.
type GroupGrant struct {
	Name  string
	Roles []string
}

// AccessResult is the positive answer to an access request. IsApproved is
// always true for a result that was produced; it is kept on the wire shape
// for forward compatibility. Group is nil for an ungrouped application.
type AccessResult struct {
	AppName    string
	IsApproved bool
	Group      *GroupGrant
}
