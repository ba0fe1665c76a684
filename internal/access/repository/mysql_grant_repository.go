package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/gatekeeper/internal/access/domain"
	"github.com/allisson/gatekeeper/internal/database"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// MySQLGrantRepository loads application grants from MySQL
type MySQLGrantRepository struct {
	db *sql.DB
}

// NewMySQLGrantRepository creates a new MySQLGrantRepository
func NewMySQLGrantRepository(db *sql.DB) *MySQLGrantRepository {
	return &MySQLGrantRepository{
		db: db,
	}
}

// GetByCredentials retrieves the grant view for an exact credential pair.
// Returns ErrNotFound when no application matches the pair.
func (r *MySQLGrantRepository) GetByCredentials(ctx context.Context, appID, appKey string) (*domain.ApplicationGrant, error) {
	querier := database.GetTx(ctx, r.db)

	query := "SELECT a.name, a.status, g.name, r.name " +
		"FROM applications a " +
		"LEFT JOIN `groups` g ON g.id = a.group_id " +
		"LEFT JOIN group_roles gr ON gr.group_id = g.id " +
		"LEFT JOIN roles r ON r.id = gr.role_id " +
		"WHERE a.app_id = ? AND a.app_key = ? " +
		"ORDER BY r.name"

	rows, err := querier.QueryContext(ctx, query, appID, appKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get application grant")
	}
	defer func() { _ = rows.Close() }()

	return collectGrant(rows)
}
