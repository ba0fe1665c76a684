package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/gatekeeper/internal/registry/domain"
	appValidation "github.com/allisson/gatekeeper/internal/validation"
)

// applicationUseCase implements ApplicationUseCase.
type applicationUseCase struct {
	appRepo   ApplicationRepository
	groupRepo GroupRepository
}

// NewApplicationUseCase creates a new ApplicationUseCase with the provided dependencies.
func NewApplicationUseCase(appRepo ApplicationRepository, groupRepo GroupRepository) ApplicationUseCase {
	return &applicationUseCase{
		appRepo:   appRepo,
		groupRepo: groupRepo,
	}
}

// Create registers a new application in the Pending state with no group. The
// credential pair is stored verbatim when supplied and generated when blank or
// the "null" placeholder; no uniqueness check is performed here, the database
// constraint on the pair is the guard. The generated credentials are returned
// exactly once, on the created entity.
func (uc *applicationUseCase) Create(
	ctx context.Context,
	actor string,
	input CreateApplicationInput,
) (*domain.Application, error) {
	err := validation.Validate(input.Name,
		validation.Required.Error("application name cannot be empty"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("application name must be between 1 and 255 characters"),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	application := &domain.Application{
		Name:   strings.TrimSpace(input.Name),
		AppID:  domain.OrGeneratedCredential(input.AppID),
		AppKey: domain.OrGeneratedCredential(input.AppKey),
		Status: domain.StatusPending,
	}
	application.StampCreated(actor, time.Now().UTC())

	if err := uc.appRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// ListPending returns all applications awaiting an approval decision.
func (uc *applicationUseCase) ListPending(ctx context.Context) ([]*domain.Application, error) {
	return uc.appRepo.ListByStatus(ctx, domain.StatusPending)
}

// Approve moves an application to the Approved state. Only an application that
// is already Approved is rejected; a Rejected application may be approved.
// Concurrent approve/reject calls race last-write-wins, which is acceptable
// for an administrative workflow.
func (uc *applicationUseCase) Approve(ctx context.Context, actor string, id int64) (*domain.Application, error) {
	return uc.setStatus(ctx, actor, id, domain.StatusApproved, domain.ErrApplicationAlreadyApproved)
}

// Reject moves an application to the Rejected state. Mirror of Approve: only
// an already-Rejected application is refused.
func (uc *applicationUseCase) Reject(ctx context.Context, actor string, id int64) (*domain.Application, error) {
	return uc.setStatus(ctx, actor, id, domain.StatusRejected, domain.ErrApplicationAlreadyRejected)
}

func (uc *applicationUseCase) setStatus(
	ctx context.Context,
	actor string,
	id int64,
	status domain.Status,
	errSameStatus error,
) (*domain.Application, error) {
	application, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if application.Status == status {
		return nil, errSameStatus
	}

	application.Status = status
	application.StampModified(actor, time.Now().UTC())

	if err := uc.appRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// AssignToGroup assigns an approved application to a group. Unknown ids fail
// with not-found before the status precondition is reported; reassigning an
// already-grouped application silently overwrites the prior assignment.
func (uc *applicationUseCase) AssignToGroup(
	ctx context.Context,
	actor string,
	applicationID, groupID int64,
) (*domain.Application, error) {
	application, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	if application.Status != domain.StatusApproved {
		return nil, domain.ErrApplicationNotApproved
	}

	application.GroupID = &groupID
	application.StampModified(actor, time.Now().UTC())

	if err := uc.appRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// Delete removes an application unconditionally. A group assignment never
// blocks deletion; the group itself is unaffected.
func (uc *applicationUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.appRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.appRepo.Delete(ctx, id)
}
