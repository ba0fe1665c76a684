package usecase

import (
	"context"
	"time"

	"github.com/allisson/gatekeeper/internal/metrics"
	"github.com/allisson/gatekeeper/internal/registry/domain"
)

const metricsDomain = "registry"

func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// groupUseCaseWithMetrics decorates GroupUseCase with metrics instrumentation.
type groupUseCaseWithMetrics struct {
	next    GroupUseCase
	metrics metrics.BusinessMetrics
}

// NewGroupUseCaseWithMetrics wraps a GroupUseCase with metrics recording.
func NewGroupUseCaseWithMetrics(useCase GroupUseCase, m metrics.BusinessMetrics) GroupUseCase {
	return &groupUseCaseWithMetrics{next: useCase, metrics: m}
}

func (g *groupUseCaseWithMetrics) Create(ctx context.Context, actor, name string) (*domain.Group, error) {
	start := time.Now()
	group, err := g.next.Create(ctx, actor, name)
	record(ctx, g.metrics, "group_create", start, err)
	return group, err
}

func (g *groupUseCaseWithMetrics) AssignRoles(
	ctx context.Context,
	actor string,
	groupID int64,
	roleIDs []int64,
) error {
	start := time.Now()
	err := g.next.AssignRoles(ctx, actor, groupID, roleIDs)
	record(ctx, g.metrics, "group_assign_roles", start, err)
	return err
}

func (g *groupUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := g.next.Delete(ctx, id)
	record(ctx, g.metrics, "group_delete", start, err)
	return err
}

// roleUseCaseWithMetrics decorates RoleUseCase with metrics instrumentation.
type roleUseCaseWithMetrics struct {
	next    RoleUseCase
	metrics metrics.BusinessMetrics
}

// NewRoleUseCaseWithMetrics wraps a RoleUseCase with metrics recording.
func NewRoleUseCaseWithMetrics(useCase RoleUseCase, m metrics.BusinessMetrics) RoleUseCase {
	return &roleUseCaseWithMetrics{next: useCase, metrics: m}
}

func (r *roleUseCaseWithMetrics) Create(ctx context.Context, actor, name string) (*domain.Role, error) {
	start := time.Now()
	role, err := r.next.Create(ctx, actor, name)
	record(ctx, r.metrics, "role_create", start, err)
	return role, err
}

func (r *roleUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := r.next.Delete(ctx, id)
	record(ctx, r.metrics, "role_delete", start, err)
	return err
}

// applicationUseCaseWithMetrics decorates ApplicationUseCase with metrics instrumentation.
type applicationUseCaseWithMetrics struct {
	next    ApplicationUseCase
	metrics metrics.BusinessMetrics
}

// NewApplicationUseCaseWithMetrics wraps an ApplicationUseCase with metrics recording.
func NewApplicationUseCaseWithMetrics(useCase ApplicationUseCase, m metrics.BusinessMetrics) ApplicationUseCase {
	return &applicationUseCaseWithMetrics{next: useCase, metrics: m}
}

func (a *applicationUseCaseWithMetrics) Create(
	ctx context.Context,
	actor string,
	input CreateApplicationInput,
) (*domain.Application, error) {
	start := time.Now()
	application, err := a.next.Create(ctx, actor, input)
	record(ctx, a.metrics, "application_create", start, err)
	return application, err
}

func (a *applicationUseCaseWithMetrics) ListPending(ctx context.Context) ([]*domain.Application, error) {
	start := time.Now()
	applications, err := a.next.ListPending(ctx)
	record(ctx, a.metrics, "application_list_pending", start, err)
	return applications, err
}

func (a *applicationUseCaseWithMetrics) Approve(
	ctx context.Context,
	actor string,
	id int64,
) (*domain.Application, error) {
	start := time.Now()
	application, err := a.next.Approve(ctx, actor, id)
	record(ctx, a.metrics, "application_approve", start, err)
	return application, err
}

func (a *applicationUseCaseWithMetrics) Reject(
	ctx context.Context,
	actor string,
	id int64,
) (*domain.Application, error) {
	start := time.Now()
	application, err := a.next.Reject(ctx, actor, id)
	record(ctx, a.metrics, "application_reject", start, err)
	return application, err
}

func (a *applicationUseCaseWithMetrics) AssignToGroup(
	ctx context.Context,
	actor string,
	applicationID, groupID int64,
) (*domain.Application, error) {
	start := time.Now()
	application, err := a.next.AssignToGroup(ctx, actor, applicationID, groupID)
	record(ctx, a.metrics, "application_assign_group", start, err)
	return application, err
}

func (a *applicationUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := a.next.Delete(ctx, id)
	record(ctx, a.metrics, "application_delete", start, err)
	return err
}
