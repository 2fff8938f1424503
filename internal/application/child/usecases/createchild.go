// Package usecases implements the writes and reads shared by the child
// records of complaints and poison reports: products, contacts and meals.
package usecases

import (
	"context"
	"time"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type CreateChildCommand struct {
	ParentID int64
	Fields   map[string]any
	Actor    record.Actor
}

type CreateChildResult struct {
	ID       int64 `json:"id"`
	ParentID int64 `json:"parent_id"`
}

type CreateChildUseCase struct {
	children   record.ChildRepository
	parents    record.ParentChecker
	authorizer record.Authorizer
	recorder   common.WriteRecorder
	now        func() time.Time
	logger     logger.Interface
}

func NewCreateChildUseCase(
	children record.ChildRepository,
	parents record.ParentChecker,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *CreateChildUseCase {
	return &CreateChildUseCase{
		children:   children,
		parents:    parents,
		authorizer: authorizer,
		recorder:   common.RecorderOrNop(recorder),
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *CreateChildUseCase) Execute(ctx context.Context, cmd CreateChildCommand) (*CreateChildResult, error) {
	spec := uc.children.Spec()
	uc.logger.Infow("executing create child use case", "kind", spec.Kind, "parent_id", cmd.ParentID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, spec.Kind, record.ActionCreate); err != nil {
		return nil, err
	}
	if err := requireParent(ctx, uc.parents, spec, cmd.ParentID); err != nil {
		return nil, err
	}

	fields, err := record.BuildEditSet(cmd.Fields, spec.AllowList)
	if err != nil {
		return nil, err
	}
	if col, missing := spec.MissingRequired(fields); missing {
		return nil, errors.NewValidationError(col + " is required")
	}
	record.StampCreate(fields, cmd.Actor, uc.now().UTC())

	id, err := uc.children.Create(ctx, cmd.ParentID, fields)
	if err != nil {
		uc.logger.Errorw("failed to create child", "kind", spec.Kind, "parent_id", cmd.ParentID, "error", err)
		return nil, errors.WrapStorage(err, "failed to save "+spec.Kind.Label())
	}
	uc.recorder.RecordWrite(string(spec.Kind), common.OpCreate)

	uc.logger.Infow("child created successfully", "kind", spec.Kind, "id", id, "parent_id", cmd.ParentID)
	return &CreateChildResult{ID: id, ParentID: cmd.ParentID}, nil
}

// requireParent fails with a validation error for a missing parent id and a
// not-found error for a parent row that does not exist.
func requireParent(ctx context.Context, parents record.ParentChecker, spec record.ChildSpec, parentID int64) error {
	if parentID <= 0 {
		return errors.NewValidationError(spec.ParentColumn + " is required")
	}
	ok, err := parents.Exists(ctx, parentID)
	if err != nil {
		return errors.WrapStorage(err, "failed to load "+spec.Parent.Label())
	}
	if !ok {
		return errors.NewNotFoundError(spec.Parent.Label() + " not found")
	}
	return nil
}
