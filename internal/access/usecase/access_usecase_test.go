package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/gatekeeper/internal/access/domain"
	registry "github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// MockGrantRepository is a mock implementation of GrantRepository
type MockGrantRepository struct {
	mock.Mock
}

func (m *MockGrantRepository) GetByCredentials(ctx context.Context, appID, appKey string) (*domain.ApplicationGrant, error) {
	args := m.Called(ctx, appID, appKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationGrant), args.Error(1)
}

func TestAccessUseCase_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves grouped application with roles", func(t *testing.T) {
		grantRepo := &MockGrantRepository{}
		useCase := NewAccessUseCase(grantRepo)

		grantRepo.On("GetByCredentials", ctx, "acme-id", "acme-key").Return(&domain.ApplicationGrant{
			Name:   "Acme",
			Status: registry.StatusApproved,
			Group: &domain.GroupGrant{
				Name:  "Partners",
				Roles: []string{"reader", "writer"},
			},
		}, nil)

		result, err := useCase.Resolve(ctx, "acme-id", "acme-key")

		require.NoError(t, err)
		assert.Equal(t, "Acme", result.AppName)
		assert.True(t, result.IsApproved)
		require.NotNil(t, result.Group)
		assert.Equal(t, "Partners", result.Group.Name)
		assert.Equal(t, []string{"reader", "writer"}, result.Group.Roles)
	})

	t.Run("resolves ungrouped application without group", func(t *testing.T) {
		grantRepo := &MockGrantRepository{}
		useCase := NewAccessUseCase(grantRepo)

		grantRepo.On("GetByCredentials", ctx, "acme-id", "acme-key").Return(&domain.ApplicationGrant{
			Name:   "Acme",
			Status: registry.StatusApproved,
		}, nil)

		result, err := useCase.Resolve(ctx, "acme-id", "acme-key")

		require.NoError(t, err)
		assert.True(t, result.IsApproved)
		assert.Nil(t, result.Group)
	})

	t.Run("empty credentials are unauthorized without a lookup", func(t *testing.T) {
		for _, creds := range [][2]string{
			{"", ""},
			{"acme-id", ""},
			{"", "acme-key"},
			{"  ", "acme-key"},
		} {
			grantRepo := &MockGrantRepository{}
			useCase := NewAccessUseCase(grantRepo)

			result, err := useCase.Resolve(ctx, creds[0], creds[1])

			assert.Nil(t, result)
			assert.True(t, apperrors.Is(err, domain.ErrInvalidCredentials))
			grantRepo.AssertNotCalled(t, "GetByCredentials")
		}
	})

	t.Run("unknown pair is indistinguishable from empty credentials", func(t *testing.T) {
		grantRepo := &MockGrantRepository{}
		useCase := NewAccessUseCase(grantRepo)

		grantRepo.On("GetByCredentials", ctx, "unknown-id", "unknown-key").
			Return(nil, apperrors.ErrNotFound)

		_, missErr := useCase.Resolve(ctx, "unknown-id", "unknown-key")
		_, emptyErr := useCase.Resolve(ctx, "", "")

		require.Error(t, missErr)
		assert.Equal(t, emptyErr, missErr)
		assert.True(t, apperrors.Is(missErr, apperrors.ErrUnauthorized))
		assert.False(t, apperrors.Is(missErr, apperrors.ErrNotFound))
	})

	t.Run("unapproved application is forbidden", func(t *testing.T) {
		for _, status := range []registry.Status{registry.StatusPending, registry.StatusRejected} {
			grantRepo := &MockGrantRepository{}
			useCase := NewAccessUseCase(grantRepo)

			grantRepo.On("GetByCredentials", ctx, "acme-id", "acme-key").Return(&domain.ApplicationGrant{
				Name:   "Acme",
				Status: status,
			}, nil)

			result, err := useCase.Resolve(ctx, "acme-id", "acme-key")

			assert.Nil(t, result, "status %s", status)
			assert.True(t, apperrors.Is(err, domain.ErrApplicationNotApproved))
			assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
		}
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		grantRepo := &MockGrantRepository{}
		useCase := NewAccessUseCase(grantRepo)

		grantRepo.On("GetByCredentials", ctx, "acme-id", "acme-key").Return(&domain.ApplicationGrant{
			Name:   "Acme",
			Status: registry.StatusApproved,
			Group:  &domain.GroupGrant{Name: "Partners", Roles: []string{"reader"}},
		}, nil)

		first, err := useCase.Resolve(ctx, "acme-id", "acme-key")
		require.NoError(t, err)
		second, err := useCase.Resolve(ctx, "acme-id", "acme-key")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
