// Package repository provides data persistence implementations for the
// application registry entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/gatekeeper/internal/database"
	"github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// MySQLGroupRepository handles group persistence for MySQL
type MySQLGroupRepository struct {
	db *sql.DB
}

// NewMySQLGroupRepository creates a new MySQLGroupRepository
func NewMySQLGroupRepository(db *sql.DB) *MySQLGroupRepository {
	return &MySQLGroupRepository{
		db: db,
	}
}

// Create inserts a new group and assigns its generated ID
func (r *MySQLGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	querier := database.GetTx(ctx, r.db)

	query := "INSERT INTO `groups` (name, created_by, date_created, last_modified_by, last_modified_date) " +
		"VALUES (?, ?, ?, ?, ?)"

	result, err := querier.ExecContext(ctx, query,
		group.Name, group.CreatedBy, group.DateCreated, group.LastModifiedBy, group.LastModifiedDate,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get group insert id")
	}
	group.ID = id
	return nil
}

// GetByID retrieves a group by ID
func (r *MySQLGroupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	var group domain.Group
	querier := database.GetTx(ctx, r.db)

	query := "SELECT id, name, created_by, date_created, last_modified_by, last_modified_date " +
		"FROM `groups` WHERE id = ?"

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&group.ID, &group.Name, &group.CreatedBy, &group.DateCreated,
		&group.LastModifiedBy, &group.LastModifiedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group by id")
	}

	return &group, nil
}

// Delete removes a group by ID
func (r *MySQLGroupRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := "DELETE FROM `groups` WHERE id = ?"

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}
