package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/registry/domain"
	"github.com/allisson/gatekeeper/internal/testutil"
)

func newTestGroupRole(groupID, roleID int64) *domain.GroupRole {
	groupRole := &domain.GroupRole{GroupID: groupID, RoleID: roleID}
	groupRole.StampCreated("admin", time.Now().UTC().Truncate(time.Microsecond))
	return groupRole
}

func TestPostgreSQLGroupRoleRepository_Create(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRoleRepository(db)
	ctx := context.Background()

	groupID := testutil.CreateTestGroup(t, db, "postgres", "Partners")
	roleID := testutil.CreateTestRole(t, db, "postgres", "reader")

	groupRole := newTestGroupRole(groupID, roleID)

	err := repo.Create(ctx, groupRole)
	assert.NoError(t, err)
	assert.NotZero(t, groupRole.ID)
}

func TestPostgreSQLGroupRoleRepository_Create_Duplicate(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRoleRepository(db)
	ctx := context.Background()

	groupID := testutil.CreateTestGroup(t, db, "postgres", "Partners")
	roleID := testutil.CreateTestRole(t, db, "postgres", "reader")

	require.NoError(t, repo.Create(ctx, newTestGroupRole(groupID, roleID)))

	err := repo.Create(ctx, newTestGroupRole(groupID, roleID))
	assert.True(t, apperrors.Is(err, domain.ErrGroupRoleExists))
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
}

func TestPostgreSQLGroupRoleRepository_ListByGroup(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRoleRepository(db)
	ctx := context.Background()

	groupID := testutil.CreateTestGroup(t, db, "postgres", "Partners")
	otherGroupID := testutil.CreateTestGroup(t, db, "postgres", "Internal")
	readerID := testutil.CreateTestRole(t, db, "postgres", "reader")
	writerID := testutil.CreateTestRole(t, db, "postgres", "writer")

	require.NoError(t, repo.Create(ctx, newTestGroupRole(groupID, readerID)))
	require.NoError(t, repo.Create(ctx, newTestGroupRole(groupID, writerID)))
	require.NoError(t, repo.Create(ctx, newTestGroupRole(otherGroupID, readerID)))

	groupRoles, err := repo.ListByGroup(ctx, groupID)
	assert.NoError(t, err)
	require.Len(t, groupRoles, 2)
	assert.Equal(t, readerID, groupRoles[0].RoleID)
	assert.Equal(t, writerID, groupRoles[1].RoleID)
}

func TestPostgreSQLGroupRoleRepository_Counts(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLGroupRoleRepository(db)
	ctx := context.Background()

	groupID := testutil.CreateTestGroup(t, db, "postgres", "Partners")
	roleID := testutil.CreateTestRole(t, db, "postgres", "reader")

	byGroup, err := repo.CountByGroup(ctx, groupID)
	assert.NoError(t, err)
	assert.Zero(t, byGroup)

	byRole, err := repo.CountByRole(ctx, roleID)
	assert.NoError(t, err)
	assert.Zero(t, byRole)

	require.NoError(t, repo.Create(ctx, newTestGroupRole(groupID, roleID)))

	byGroup, err = repo.CountByGroup(ctx, groupID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), byGroup)

	byRole, err = repo.CountByRole(ctx, roleID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), byRole)
}
