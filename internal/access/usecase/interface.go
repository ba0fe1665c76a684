// Package usecase implements credential-based access resolution: a pure read
// that folds an application's group and role graph into a flat authorization
// answer.
package usecase

import (
	"context"

	"github.com/allisson/gatekeeper/internal/access/domain"
)

// GrantRepository loads the access view of an application by its exact
// credential pair, with the group and role names eagerly resolved.
type GrantRepository interface {
	GetByCredentials(ctx context.Context, appID, appKey string) (*domain.ApplicationGrant, error)
}

// AccessUseCase defines the access resolution operation.
type AccessUseCase interface {
	Resolve(ctx context.Context, appID, appKey string) (*domain.AccessResult, error)
}
