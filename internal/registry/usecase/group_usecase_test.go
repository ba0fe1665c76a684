package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/registry/domain"
)

func newGroupUseCase() (GroupUseCase, *MockTxManager, *MockGroupRepository, *MockRoleRepository, *MockApplicationRepository, *MockGroupRoleRepository) {
	txManager := &MockTxManager{}
	groupRepo := &MockGroupRepository{}
	roleRepo := &MockRoleRepository{}
	appRepo := &MockApplicationRepository{}
	groupRoleRepo := &MockGroupRoleRepository{}
	useCase := NewGroupUseCase(txManager, groupRepo, roleRepo, appRepo, groupRoleRepo)
	return useCase, txManager, groupRepo, roleRepo, appRepo, groupRoleRepo
}

func TestGroupUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates group with audit stamps", func(t *testing.T) {
		useCase, _, groupRepo, _, _, _ := newGroupUseCase()

		groupRepo.On("Create", ctx, mock.AnythingOfType("*domain.Group")).Return(nil)

		group, err := useCase.Create(ctx, "alice", "Partners")

		require.NoError(t, err)
		assert.Equal(t, "Partners", group.Name)
		assert.Equal(t, "alice", group.CreatedBy)
		assert.Equal(t, "alice", group.LastModifiedBy)
		assert.False(t, group.DateCreated.IsZero())
		assert.Equal(t, group.DateCreated, group.LastModifiedDate)
		groupRepo.AssertExpectations(t)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		useCase, _, groupRepo, _, _, _ := newGroupUseCase()

		for _, name := range []string{"", "   "} {
			group, err := useCase.Create(ctx, "alice", name)
			assert.Nil(t, group)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		}
		groupRepo.AssertNotCalled(t, "Create")
	})
}

func TestGroupUseCase_AssignRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one link per role", func(t *testing.T) {
		useCase, txManager, groupRepo, roleRepo, _, groupRoleRepo := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(1)).Return(&domain.Group{Name: "Partners"}, nil)
		roleRepo.On("GetByIDs", ctx, []int64{10, 11}).Return([]*domain.Role{
			{AuditFields: domain.AuditFields{ID: 10}, Name: "Reader"},
			{AuditFields: domain.AuditFields{ID: 11}, Name: "Writer"},
		}, nil)
		groupRoleRepo.On("ListByGroup", ctx, int64(1)).Return([]*domain.GroupRole{}, nil)
		groupRoleRepo.On("Create", ctx, mock.AnythingOfType("*domain.GroupRole")).Return(nil).Twice()

		err := useCase.AssignRoles(ctx, "alice", 1, []int64{10, 11})

		assert.NoError(t, err)
		groupRoleRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("fails when group is unknown", func(t *testing.T) {
		useCase, txManager, groupRepo, roleRepo, _, groupRoleRepo := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrGroupNotFound)

		err := useCase.AssignRoles(ctx, "alice", 99, []int64{10})

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		roleRepo.AssertNotCalled(t, "GetByIDs")
		groupRoleRepo.AssertNotCalled(t, "Create")
	})

	t.Run("validates the full role set before creating any link", func(t *testing.T) {
		useCase, txManager, groupRepo, roleRepo, _, groupRoleRepo := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(1)).Return(&domain.Group{Name: "Partners"}, nil)
		// Role 11 does not exist
		roleRepo.On("GetByIDs", ctx, []int64{10, 11}).Return([]*domain.Role{
			{AuditFields: domain.AuditFields{ID: 10}, Name: "Reader"},
		}, nil)

		err := useCase.AssignRoles(ctx, "alice", 1, []int64{10, 11})

		assert.True(t, apperrors.Is(err, domain.ErrRoleNotFound))
		assert.Contains(t, err.Error(), "11")
		groupRoleRepo.AssertNotCalled(t, "Create")
	})

	t.Run("silently skips roles the group already holds", func(t *testing.T) {
		useCase, txManager, groupRepo, roleRepo, _, groupRoleRepo := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(1)).Return(&domain.Group{Name: "Partners"}, nil)
		roleRepo.On("GetByIDs", ctx, []int64{10, 11}).Return([]*domain.Role{
			{AuditFields: domain.AuditFields{ID: 10}, Name: "Reader"},
			{AuditFields: domain.AuditFields{ID: 11}, Name: "Writer"},
		}, nil)
		groupRoleRepo.On("ListByGroup", ctx, int64(1)).Return([]*domain.GroupRole{
			{GroupID: 1, RoleID: 10},
		}, nil)
		groupRoleRepo.On("Create", ctx, mock.MatchedBy(func(link *domain.GroupRole) bool {
			return link.RoleID == 11
		})).Return(nil).Once()

		err := useCase.AssignRoles(ctx, "alice", 1, []int64{10, 11})

		assert.NoError(t, err)
		groupRoleRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("rejects empty role set", func(t *testing.T) {
		useCase, txManager, _, _, _, _ := newGroupUseCase()

		err := useCase.AssignRoles(ctx, "alice", 1, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		txManager.AssertNotCalled(t, "WithTx")
	})
}

func TestGroupUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes group with no dependents", func(t *testing.T) {
		useCase, txManager, groupRepo, _, appRepo, groupRoleRepo := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(1)).Return(&domain.Group{Name: "Partners"}, nil)
		appRepo.On("CountByGroup", ctx, int64(1)).Return(int64(0), nil)
		groupRoleRepo.On("CountByGroup", ctx, int64(1)).Return(int64(0), nil)
		groupRepo.On("Delete", ctx, int64(1)).Return(nil)

		assert.NoError(t, useCase.Delete(ctx, 1))
		groupRepo.AssertExpectations(t)
	})

	t.Run("blocks while applications are assigned", func(t *testing.T) {
		useCase, txManager, groupRepo, _, appRepo, _ := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(1)).Return(&domain.Group{Name: "Partners"}, nil)
		appRepo.On("CountByGroup", ctx, int64(1)).Return(int64(2), nil)

		err := useCase.Delete(ctx, 1)

		assert.True(t, apperrors.Is(err, domain.ErrGroupHasApplications))
		groupRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("blocks while roles are assigned", func(t *testing.T) {
		useCase, txManager, groupRepo, _, appRepo, groupRoleRepo := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(1)).Return(&domain.Group{Name: "Partners"}, nil)
		appRepo.On("CountByGroup", ctx, int64(1)).Return(int64(0), nil)
		groupRoleRepo.On("CountByGroup", ctx, int64(1)).Return(int64(1), nil)

		err := useCase.Delete(ctx, 1)

		assert.True(t, apperrors.Is(err, domain.ErrGroupHasRoles))
		groupRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("distinct messages for the two conflict kinds", func(t *testing.T) {
		assert.NotEqual(t, domain.ErrGroupHasApplications.Error(), domain.ErrGroupHasRoles.Error())
	})

	t.Run("fails for unknown group", func(t *testing.T) {
		useCase, txManager, groupRepo, _, _, _ := newGroupUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		groupRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrGroupNotFound)

		err := useCase.Delete(ctx, 99)

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}
