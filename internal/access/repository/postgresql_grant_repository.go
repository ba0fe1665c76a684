// Package repository loads the access resolution read models. Both drivers
// resolve the application, its group and the group's roles in a single query
// so resolution stays one round trip on the hot path.
package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/gatekeeper/internal/access/domain"
	"github.com/allisson/gatekeeper/internal/database"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// PostgreSQLGrantRepository loads application grants from PostgreSQL
type PostgreSQLGrantRepository struct {
	db *sql.DB
}

// NewPostgreSQLGrantRepository creates a new PostgreSQLGrantRepository
func NewPostgreSQLGrantRepository(db *sql.DB) *PostgreSQLGrantRepository {
	return &PostgreSQLGrantRepository{
		db: db,
	}
}

// GetByCredentials retrieves the grant view for an exact credential pair.
// Returns ErrNotFound when no application matches the pair.
func (r *PostgreSQLGrantRepository) GetByCredentials(ctx context.Context, appID, appKey string) (*domain.ApplicationGrant, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT a.name, a.status, g.name, r.name
			  FROM applications a
			  LEFT JOIN groups g ON g.id = a.group_id
			  LEFT JOIN group_roles gr ON gr.group_id = g.id
			  LEFT JOIN roles r ON r.id = gr.role_id
			  WHERE a.app_id = $1 AND a.app_key = $2
			  ORDER BY r.name`

	rows, err := querier.QueryContext(ctx, query, appID, appKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get application grant")
	}
	defer func() { _ = rows.Close() }()

	return collectGrant(rows)
}
