package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/gatekeeper/internal/database"
	"github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// MySQLApplicationRepository handles application persistence for MySQL
type MySQLApplicationRepository struct {
	db *sql.DB
}

// NewMySQLApplicationRepository creates a new MySQLApplicationRepository
func NewMySQLApplicationRepository(db *sql.DB) *MySQLApplicationRepository {
	return &MySQLApplicationRepository{
		db: db,
	}
}

// Create inserts a new application and assigns its generated ID
func (r *MySQLApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO applications (name, app_id, app_key, status, group_id, created_by, date_created, last_modified_by, last_modified_date)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		application.Name, application.AppID, application.AppKey, application.Status,
		groupIDValue(application.GroupID),
		application.CreatedBy, application.DateCreated,
		application.LastModifiedBy, application.LastModifiedDate,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create application")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get application insert id")
	}
	application.ID = id
	return nil
}

// GetByID retrieves an application by ID
func (r *MySQLApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, app_id, app_key, status, group_id, created_by, date_created, last_modified_by, last_modified_date
			  FROM applications WHERE id = ?`

	application, err := scanApplication(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get application by id")
	}

	return application, nil
}

// Update persists the mutable application fields
func (r *MySQLApplicationRepository) Update(ctx context.Context, application *domain.Application) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE applications
			  SET name = ?, app_id = ?, app_key = ?, status = ?, group_id = ?, last_modified_by = ?, last_modified_date = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		application.Name, application.AppID, application.AppKey, application.Status,
		groupIDValue(application.GroupID),
		application.LastModifiedBy, application.LastModifiedDate,
		application.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update application")
	}

	// MySQL reports zero affected rows for no-op updates, so a missing row
	// cannot be told apart from an unchanged one here. Callers load the
	// application first, which covers the not-found case.
	_, err = result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	return nil
}

// Delete removes an application by ID
func (r *MySQLApplicationRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM applications WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete application")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// ListByStatus retrieves all applications with the given status ordered by ID
func (r *MySQLApplicationRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Application, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, app_id, app_key, status, group_id, created_by, date_created, last_modified_by, last_modified_date
			  FROM applications WHERE status = ? ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, status)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list applications by status")
	}
	defer func() { _ = rows.Close() }()

	return collectApplications(rows)
}

// CountByGroup returns the number of applications assigned to the given group
func (r *MySQLApplicationRepository) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COUNT(*) FROM applications WHERE group_id = ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, groupID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count applications by group")
	}
	return count, nil
}
