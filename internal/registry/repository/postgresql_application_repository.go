package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/gatekeeper/internal/database"
	"github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// PostgreSQLApplicationRepository handles application persistence for PostgreSQL
type PostgreSQLApplicationRepository struct {
	db *sql.DB
}

// NewPostgreSQLApplicationRepository creates a new PostgreSQLApplicationRepository
func NewPostgreSQLApplicationRepository(db *sql.DB) *PostgreSQLApplicationRepository {
	return &PostgreSQLApplicationRepository{
		db: db,
	}
}

// Create inserts a new application and assigns its generated ID
func (r *PostgreSQLApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO applications (name, app_id, app_key, status, group_id, created_by, date_created, last_modified_by, last_modified_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		application.Name, application.AppID, application.AppKey, application.Status,
		groupIDValue(application.GroupID),
		application.CreatedBy, application.DateCreated,
		application.LastModifiedBy, application.LastModifiedDate,
	).Scan(&application.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create application")
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *PostgreSQLApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, app_id, app_key, status, group_id, created_by, date_created, last_modified_by, last_modified_date
			  FROM applications WHERE id = $1`

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
func (r *PostgreSQLApplicationRepository) Update(ctx context.Context, application *domain.Application) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE applications
			  SET name = $1, app_id = $2, app_key = $3, status = $4, group_id = $5, last_modified_by = $6, last_modified_date = $7
			  WHERE id = $8`

	result, err := querier.ExecContext(ctx, query,
		application.Name, application.AppID, application.AppKey, application.Status,
		groupIDValue(application.GroupID),
		application.LastModifiedBy, application.LastModifiedDate,
		application.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update application")
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

// Delete removes an application by ID
func (r *PostgreSQLApplicationRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM applications WHERE id = $1`

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
func (r *PostgreSQLApplicationRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Application, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, app_id, app_key, status, group_id, created_by, date_created, last_modified_by, last_modified_date
			  FROM applications WHERE status = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, status)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list applications by status")
	}
	defer func() { _ = rows.Close() }()

	return collectApplications(rows)
}

// CountByGroup returns the number of applications assigned to the given group
func (r *PostgreSQLApplicationRepository) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COUNT(*) FROM applications WHERE group_id = $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, groupID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count applications by group")
	}
	return count, nil
}
