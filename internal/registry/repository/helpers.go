package repository

import (
	"database/sql"
	"strings"

	"github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// groupIDValue converts an optional group reference to a driver value,
// mapping nil to SQL NULL.
func groupIDValue(groupID *int64) sql.NullInt64 {
	if groupID == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *groupID, Valid: true}
}

// scanApplication reads one application row including the nullable group reference.
func scanApplication(row rowScanner) (*domain.Application, error) {
	var application domain.Application
	var groupID sql.NullInt64

	err := row.Scan(
		&application.ID, &application.Name, &application.AppID, &application.AppKey,
		&application.Status, &groupID,
		&application.CreatedBy, &application.DateCreated,
		&application.LastModifiedBy, &application.LastModifiedDate,
	)
	if err != nil {
		return nil, err
	}

	if groupID.Valid {
		application.GroupID = &groupID.Int64
	}
	return &application, nil
}

// collectApplications drains a result set of application rows.
func collectApplications(rows *sql.Rows) ([]*domain.Application, error) {
	var applications []*domain.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan application")
		}
		applications = append(applications, application)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate applications")
	}
	return applications, nil
}

// scanGroupRole reads one group-role link row.
func scanGroupRole(row rowScanner) (*domain.GroupRole, error) {
	var groupRole domain.GroupRole

	err := row.Scan(
		&groupRole.ID, &groupRole.GroupID, &groupRole.RoleID,
		&groupRole.CreatedBy, &groupRole.DateCreated,
		&groupRole.LastModifiedBy, &groupRole.LastModifiedDate,
	)
	if err != nil {
		return nil, err
	}
	return &groupRole, nil
}

// isUniqueViolation checks if the error is a unique constraint violation.
// Covers both PostgreSQL ("duplicate key value violates unique constraint")
// and MySQL ("Error 1062: Duplicate entry") message shapes.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry")
}
