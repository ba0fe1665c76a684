package domain

import (
	"github.com/allisson/gatekeeper/internal/errors"
)

// Domain-specific errors for registry operations. The conflict messages are
// user-visible and deliberately distinct so an administrative client can tell
// "group still has applications" from "group still has roles" without parsing
// anything beyond the message field.
var (
	// ErrApplicationNotFound indicates the requested application does not exist.
	ErrApplicationNotFound = errors.Wrap(errors.ErrNotFound, "application not found")

	// ErrGroupNotFound indicates the requested application group does not exist.
	ErrGroupNotFound = errors.Wrap(errors.ErrNotFound, "application group not found")

	// ErrRoleNotFound indicates the requested role does not exist.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrApplicationAlreadyApproved indicates an approve call on an already-approved application.
	ErrApplicationAlreadyApproved = errors.Wrap(errors.ErrConflict, "application is already approved")

	// ErrApplicationAlreadyRejected indicates a reject call on an already-rejected application.
	ErrApplicationAlreadyRejected = errors.Wrap(errors.ErrConflict, "application is already rejected")

	// ErrApplicationNotApproved indicates a group assignment was attempted
	// while the application is not in the Approved state.
	ErrApplicationNotApproved = errors.Wrap(
		errors.ErrInvalidInput,
		"application must be approved before assigning to a group",
	)

	// ErrGroupHasApplications blocks group deletion while applications reference it.
	ErrGroupHasApplications = errors.Wrap(
		errors.ErrConflict,
		"cannot delete group: applications are still assigned to it",
	)

	// ErrGroupHasRoles blocks group deletion while group-role links reference it.
	ErrGroupHasRoles = errors.Wrap(errors.ErrConflict, "cannot delete group: roles are still assigned to it")

	// ErrRoleInUse blocks role deletion while group-role links reference it.
	ErrRoleInUse = errors.Wrap(
		errors.ErrConflict,
		"cannot delete role: it is currently assigned to one or more groups",
	)

	// ErrGroupRoleExists indicates the composite-key constraint rejected a
	// duplicate group-role link. The usecase normally dedups before inserting,
	// so this surfaces only when concurrent assignments race.
	ErrGroupRoleExists = errors.Wrap(errors.ErrConflict, "role is already assigned to the group")
)
