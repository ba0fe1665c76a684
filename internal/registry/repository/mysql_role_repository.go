package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/allisson/gatekeeper/internal/database"
	"github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// MySQLRoleRepository handles role persistence for MySQL
type MySQLRoleRepository struct {
	db *sql.DB
}

// NewMySQLRoleRepository creates a new MySQLRoleRepository
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{
		db: db,
	}
}

// Create inserts a new role and assigns its generated ID
func (r *MySQLRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO roles (name, created_by, date_created, last_modified_by, last_modified_date)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		role.Name, role.CreatedBy, role.DateCreated, role.LastModifiedBy, role.LastModifiedDate,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create role")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get role insert id")
	}
	role.ID = id
	return nil
}

// GetByID retrieves a role by ID
func (r *MySQLRoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_by, date_created, last_modified_by, last_modified_date
			  FROM roles WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&role.ID, &role.Name, &role.CreatedBy, &role.DateCreated,
		&role.LastModifiedBy, &role.LastModifiedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role by id")
	}

	return &role, nil
}

// GetByIDs retrieves the roles matching the given IDs. Missing IDs are simply
// absent from the result; the caller decides whether that is an error.
func (r *MySQLRoleRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	querier := database.GetTx(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		`SELECT id, name, created_by, date_created, last_modified_by, last_modified_date
		 FROM roles WHERE id IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get roles by ids")
	}
	defer func() { _ = rows.Close() }()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(
			&role.ID, &role.Name, &role.CreatedBy, &role.DateCreated,
			&role.LastModifiedBy, &role.LastModifiedDate,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}

	return roles, nil
}

// Delete removes a role by ID
func (r *MySQLRoleRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM roles WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete role")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}
