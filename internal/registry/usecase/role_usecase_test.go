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

func newRoleUseCase() (RoleUseCase, *MockTxManager, *MockRoleRepository, *MockGroupRoleRepository) {
	txManager := &MockTxManager{}
	roleRepo := &MockRoleRepository{}
	groupRoleRepo := &MockGroupRoleRepository{}
	useCase := NewRoleUseCase(txManager, roleRepo, groupRoleRepo)
	return useCase, txManager, roleRepo, groupRoleRepo
}

func TestRoleUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates role with audit stamps", func(t *testing.T) {
		useCase, _, roleRepo, _ := newRoleUseCase()

		roleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Role")).Return(nil)

		role, err := useCase.Create(ctx, "bob", "Reader")

		require.NoError(t, err)
		assert.Equal(t, "Reader", role.Name)
		assert.Equal(t, "bob", role.CreatedBy)
		assert.False(t, role.DateCreated.IsZero())
		roleRepo.AssertExpectations(t)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		useCase, _, roleRepo, _ := newRoleUseCase()

		role, err := useCase.Create(ctx, "bob", "  ")

		assert.Nil(t, role)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		roleRepo.AssertNotCalled(t, "Create")
	})
}

func TestRoleUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes unreferenced role", func(t *testing.T) {
		useCase, txManager, roleRepo, groupRoleRepo := newRoleUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		roleRepo.On("GetByID", ctx, int64(1)).Return(&domain.Role{Name: "Reader"}, nil)
		groupRoleRepo.On("CountByRole", ctx, int64(1)).Return(int64(0), nil)
		roleRepo.On("Delete", ctx, int64(1)).Return(nil)

		assert.NoError(t, useCase.Delete(ctx, 1))
		roleRepo.AssertExpectations(t)
	})

	t.Run("blocks while links reference the role", func(t *testing.T) {
		useCase, txManager, roleRepo, groupRoleRepo := newRoleUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		roleRepo.On("GetByID", ctx, int64(1)).Return(&domain.Role{Name: "Reader"}, nil)
		groupRoleRepo.On("CountByRole", ctx, int64(1)).Return(int64(3), nil)

		err := useCase.Delete(ctx, 1)

		assert.True(t, apperrors.Is(err, domain.ErrRoleInUse))
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
		roleRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("fails for unknown role", func(t *testing.T) {
		useCase, txManager, roleRepo, _ := newRoleUseCase()

		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		roleRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrRoleNotFound)

		err := useCase.Delete(ctx, 99)

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}
