package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/gatekeeper/internal/database"
	"github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// PostgreSQLGroupRoleRepository handles group-role link persistence for PostgreSQL
type PostgreSQLGroupRoleRepository struct {
	db *sql.DB
}

// NewPostgreSQLGroupRoleRepository creates a new PostgreSQLGroupRoleRepository
func NewPostgreSQLGroupRoleRepository(db *sql.DB) *PostgreSQLGroupRoleRepository {
	return &PostgreSQLGroupRoleRepository{
		db: db,
	}
}

// Create inserts a new group-role link and assigns its generated ID
func (r *PostgreSQLGroupRoleRepository) Create(ctx context.Context, groupRole *domain.GroupRole) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO group_roles (group_id, role_id, created_by, date_created, last_modified_by, last_modified_date)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		groupRole.GroupID, groupRole.RoleID,
		groupRole.CreatedBy, groupRole.DateCreated,
		groupRole.LastModifiedBy, groupRole.LastModifiedDate,
	).Scan(&groupRole.ID)
	if err != nil {
		// The (group_id, role_id) pair is unique
		if isUniqueViolation(err) {
			return domain.ErrGroupRoleExists
		}
		return apperrors.Wrap(err, "failed to create group role")
	}
	return nil
}

// ListByGroup retrieves all links held by the given group
func (r *PostgreSQLGroupRoleRepository) ListByGroup(ctx context.Context, groupID int64) ([]*domain.GroupRole, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, group_id, role_id, created_by, date_created, last_modified_by, last_modified_date
			  FROM group_roles WHERE group_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list group roles")
	}
	defer func() { _ = rows.Close() }()

	var groupRoles []*domain.GroupRole
	for rows.Next() {
		groupRole, err := scanGroupRole(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group role")
		}
		groupRoles = append(groupRoles, groupRole)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate group roles")
	}

	return groupRoles, nil
}

// CountByGroup returns the number of links held by the given group
func (r *PostgreSQLGroupRoleRepository) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COUNT(*) FROM group_roles WHERE group_id = $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, groupID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count group roles by group")
	}
	return count, nil
}

// CountByRole returns the number of links referencing the given role
func (r *PostgreSQLGroupRoleRepository) CountByRole(ctx context.Context, roleID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COUNT(*) FROM group_roles WHERE role_id = $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, roleID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count group roles by role")
	}
	return count, nil
}
