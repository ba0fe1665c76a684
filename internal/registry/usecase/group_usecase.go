package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/gatekeeper/internal/database"
	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/registry/domain"
	appValidation "github.com/allisson/gatekeeper/internal/validation"
)

// groupUseCase implements GroupUseCase.
type groupUseCase struct {
	txManager     database.TxManager
	groupRepo     GroupRepository
	roleRepo      RoleRepository
	appRepo       ApplicationRepository
	groupRoleRepo GroupRoleRepository
}

// NewGroupUseCase creates a new GroupUseCase with the provided dependencies.
func NewGroupUseCase(
	txManager database.TxManager,
	groupRepo GroupRepository,
	roleRepo RoleRepository,
	appRepo ApplicationRepository,
	groupRoleRepo GroupRoleRepository,
) GroupUseCase {
	return &groupUseCase{
		txManager:     txManager,
		groupRepo:     groupRepo,
		roleRepo:      roleRepo,
		appRepo:       appRepo,
		groupRoleRepo: groupRoleRepo,
	}
}

// Create validates the name and inserts a new group with audit stamps set to
// the acting administrator.
func (uc *groupUseCase) Create(ctx context.Context, actor, name string) (*domain.Group, error) {
	err := validation.Validate(name,
		validation.Required.Error("group name cannot be empty"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("group name must be between 1 and 255 characters"),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	group := &domain.Group{Name: strings.TrimSpace(name)}
	group.StampCreated(actor, time.Now().UTC())

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// AssignRoles grants the given roles to the group. The full role set is
// validated before any link is created; unknown group or role ids fail the
// whole call. Roles the group already holds are silently skipped, so repeated
// calls with overlapping sets are idempotent. The validate-then-insert
// sequence runs in one transaction so a role deleted mid-call cannot leave a
// dangling link.
func (uc *groupUseCase) AssignRoles(ctx context.Context, actor string, groupID int64, roleIDs []int64) error {
	if err := validation.Validate(roleIDs, validation.Required.Error("role ids cannot be empty")); err != nil {
		return appValidation.WrapValidationError(err)
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.groupRepo.GetByID(ctx, groupID); err != nil {
			return err
		}

		roles, err := uc.roleRepo.GetByIDs(ctx, roleIDs)
		if err != nil {
			return err
		}

		found := make(map[int64]bool, len(roles))
		for _, role := range roles {
			found[role.ID] = true
		}
		for _, roleID := range roleIDs {
			if !found[roleID] {
				return apperrors.Wrap(domain.ErrRoleNotFound, fmt.Sprintf("role with id %d", roleID))
			}
		}

		existing, err := uc.groupRoleRepo.ListByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		assigned := make(map[int64]bool, len(existing))
		for _, link := range existing {
			assigned[link.RoleID] = true
		}

		now := time.Now().UTC()
		for _, roleID := range roleIDs {
			if assigned[roleID] {
				continue
			}
			assigned[roleID] = true

			link := &domain.GroupRole{GroupID: groupID, RoleID: roleID}
			link.StampCreated(actor, now)
			if err := uc.groupRoleRepo.Create(ctx, link); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a group only when nothing references it: any assigned
// application or any group-role link blocks the deletion with a distinct
// conflict error. The dependency checks and the delete run in one transaction.
func (uc *groupUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.groupRepo.GetByID(ctx, id); err != nil {
			return err
		}

		appCount, err := uc.appRepo.CountByGroup(ctx, id)
		if err != nil {
			return err
		}
		if appCount > 0 {
			return domain.ErrGroupHasApplications
		}

		roleCount, err := uc.groupRoleRepo.CountByGroup(ctx, id)
		if err != nil {
			return err
		}
		if roleCount > 0 {
			return domain.ErrGroupHasRoles
		}

		return uc.groupRepo.Delete(ctx, id)
	})
}
