package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/gatekeeper/internal/database"
	"github.com/allisson/gatekeeper/internal/registry/domain"
	appValidation "github.com/allisson/gatekeeper/internal/validation"
)

// roleUseCase implements RoleUseCase.
type roleUseCase struct {
	txManager     database.TxManager
	roleRepo      RoleRepository
	groupRoleRepo GroupRoleRepository
}

// NewRoleUseCase creates a new RoleUseCase with the provided dependencies.
func NewRoleUseCase(
	txManager database.TxManager,
	roleRepo RoleRepository,
	groupRoleRepo GroupRoleRepository,
) RoleUseCase {
	return &roleUseCase{
		txManager:     txManager,
		roleRepo:      roleRepo,
		groupRoleRepo: groupRoleRepo,
	}
}

// Create validates the name and inserts a new role with audit stamps set to
// the acting administrator.
func (uc *roleUseCase) Create(ctx context.Context, actor, name string) (*domain.Role, error) {
	err := validation.Validate(name,
		validation.Required.Error("role name cannot be empty"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("role name must be between 1 and 255 characters"),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	role := &domain.Role{Name: strings.TrimSpace(name)}
	role.StampCreated(actor, time.Now().UTC())

	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role unless any group-role link still references it. The
// dependency check and the delete run in one transaction.
func (uc *roleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.roleRepo.GetByID(ctx, id); err != nil {
			return err
		}

		linkCount, err := uc.groupRoleRepo.CountByRole(ctx, id)
		if err != nil {
			return err
		}
		if linkCount > 0 {
			return domain.ErrRoleInUse
		}

		return uc.roleRepo.Delete(ctx, id)
	})
}
