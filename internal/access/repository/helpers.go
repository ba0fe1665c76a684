package repository

import (
	"database/sql"

	"github.com/allisson/gatekeeper/internal/access/domain"
	registry "github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// collectGrant folds the joined (application, group, role) rows into a single
// grant. Zero rows means no application matched the credential pair. The
// group columns are NULL for an ungrouped application, and the role column is
// NULL for a grouped application whose group holds no roles.
func collectGrant(rows *sql.Rows) (*domain.ApplicationGrant, error) {
	var grant *domain.ApplicationGrant

	for rows.Next() {
		var (
			appName   string
			status    registry.Status
			groupName sql.NullString
			roleName  sql.NullString
		)

		if err := rows.Scan(&appName, &status, &groupName, &roleName); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan application grant")
		}

		if grant == nil {
			grant = &domain.ApplicationGrant{Name: appName, Status: status}
			if groupName.Valid {
				grant.Group = &domain.GroupGrant{Name: groupName.String, Roles: []string{}}
			}
		}

		if grant.Group != nil && roleName.Valid {
			grant.Group.Roles = append(grant.Group.Roles, roleName.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate application grant")
	}

	if grant == nil {
		return nil, apperrors.ErrNotFound
	}
	return grant, nil
}
