// Package usecase implements the administration operations of the application
// registry: creating groups, roles and applications, driving the application
// lifecycle, and the dependency-checked deletes.
package usecase

import (
	"context"

	"github.com/allisson/gatekeeper/internal/registry/domain"
)

// GroupRepository defines persistence operations for application groups.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	Delete(ctx context.Context, id int64) error
}

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	Update(ctx context.Context, application *domain.Application) error
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Application, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
}

// GroupRoleRepository defines persistence operations for group-role links.
type GroupRoleRepository interface {
	Create(ctx context.Context, groupRole *domain.GroupRole) error
	ListByGroup(ctx context.Context, groupID int64) ([]*domain.GroupRole, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
	CountByRole(ctx context.Context, roleID int64) (int64, error)
}

// GroupUseCase defines the group administration operations. Every mutating
// method takes the acting administrator's name for audit stamping.
type GroupUseCase interface {
	Create(ctx context.Context, actor, name string) (*domain.Group, error)
	AssignRoles(ctx context.Context, actor string, groupID int64, roleIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

// RoleUseCase defines the role administration operations.
type RoleUseCase interface {
	Create(ctx context.Context, actor, name string) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}

// CreateApplicationInput contains the input data for registering an application.
// AppID and AppKey are optional; blank or "null" values are replaced with
// generated random tokens.
type CreateApplicationInput struct {
	Name   string
	AppID  string
	AppKey string
}

// ApplicationUseCase defines the application administration operations.
type ApplicationUseCase interface {
	Create(ctx context.Context, actor string, input CreateApplicationInput) (*domain.Application, error)
	ListPending(ctx context.Context) ([]*domain.Application, error)
	Approve(ctx context.Context, actor string, id int64) (*domain.Application, error)
	Reject(ctx context.Context, actor string, id int64) (*domain.Application, error)
	AssignToGroup(ctx context.Context, actor string, applicationID, groupID int64) (*domain.Application, error)
	Delete(ctx context.Context, id int64) error
}
