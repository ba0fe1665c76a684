package usecase

import (
	"context"
	"strings"

	"github.com/allisson/gatekeeper/internal/access/domain"
	registry "github.com/allisson/gatekeeper/internal/registry/domain"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

type accessUseCase struct {
	grantRepo GrantRepository
}

// NewAccessUseCase creates a new AccessUseCase
func NewAccessUseCase(grantRepo GrantRepository) AccessUseCase {
	return &accessUseCase{
		grantRepo: grantRepo,
	}
}

// Resolve answers whether the credential pair identifies an approved
// application and, if so, which group and roles it holds. Empty credentials
// and unknown pairs both fail with the same unauthorized error.
func (u *accessUseCase) Resolve(ctx context.Context, appID, appKey string) (*domain.AccessResult, error) {
	if strings.TrimSpace(appID) == "" || strings.TrimSpace(appKey) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	grant, err := u.grantRepo.GetByCredentials(ctx, appID, appKey)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "failed to resolve access")
	}

	if grant.Status != registry.StatusApproved {
		return nil, domain.ErrApplicationNotApproved
	}

	return &domain.AccessResult{
		AppName:    grant.Name,
		IsApproved: true,
		Group:      grant.Group,
	}, nil
}
