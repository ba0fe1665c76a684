package domain

// Group is an administrative bucket that applications may belong to and that
// carries a set of roles. A group is only deletable while no application and
// no group-role link references it.
type Group struct {
	AuditFields
	Name string
}

// Role is a named permission unit attached to groups through group-role links.
// A role is only deletable while no link references it.
type Role struct {
	AuditFields
	Name string
}

// GroupRole grants a Role to a Group. Its identity is the (GroupID, RoleID)
// composite: a group holds a given role at most once. Links are created only
// through the assign-roles-to-group operation, and while any link exists
// neither endpoint can be deleted.
type GroupRole struct {
	AuditFields
	GroupID int64
	RoleID  int64
}
