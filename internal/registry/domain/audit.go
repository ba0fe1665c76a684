// Package domain defines the application registry entities and their invariants.
package domain

import "time"

// AuditFields is the base shape shared by every registry entity: a
// system-assigned immutable identifier plus creation and last-modification
// stamps. CreatedBy and DateCreated never change after insert; the
// modification pair is refreshed on every mutation.
type AuditFields struct {
	ID               int64
	CreatedBy        string
	DateCreated      time.Time
	LastModifiedBy   string
	LastModifiedDate time.Time
}

// StampCreated sets all four audit stamps for a new entity.
func (a *AuditFields) StampCreated(actor string, now time.Time) {
	a.CreatedBy = actor
	a.DateCreated = now
	a.LastModifiedBy = actor
	a.LastModifiedDate = now
}

// StampModified refreshes the modification stamps, leaving the creation pair intact.
func (a *AuditFields) StampModified(actor string, now time.Time) {
	a.LastModifiedBy = actor
	a.LastModifiedDate = now
}
