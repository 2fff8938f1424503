package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type UpdateChildCommand struct {
	ID     int64
	Fields map[string]any
	Actor  record.Actor
}

type UpdateChildUseCase struct {
	children   record.ChildRepository
	authorizer record.Authorizer
	recorder   common.WriteRecorder
	now        func() time.Time
	logger     logger.Interface
}

func NewUpdateChildUseCase(
	children record.ChildRepository,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *UpdateChildUseCase {
	return &UpdateChildUseCase{
		children:   children,
		authorizer: authorizer,
		recorder:   common.RecorderOrNop(recorder),
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *UpdateChildUseCase) Execute(ctx context.Context, cmd UpdateChildCommand) error {
	spec := uc.children.Spec()
	uc.logger.Infow("executing update child use case", "kind", spec.Kind, "id", cmd.ID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, spec.Kind, record.ActionUpdate); err != nil {
		return err
	}
	if cmd.ID <= 0 {
		return errors.NewValidationError(spec.Kind.Label() + " id is required")
	}

	fields, err := record.BuildEditSet(cmd.Fields, spec.AllowList)
	if err != nil {
		return err
	}
	for _, col := range spec.Required {
		if fields.Has(col) && strings.TrimSpace(fields.String(col)) == "" {
			return errors.NewValidationError(col + " must not be empty")
		}
	}
	record.StampUpdate(fields, cmd.Actor, uc.now().UTC())

	if err := uc.children.Update(ctx, cmd.ID, fields); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update child", "kind", spec.Kind, "id", cmd.ID, "error", err)
		}
		return errors.WrapStorage(err, "failed to save "+spec.Kind.Label())
	}
	uc.recorder.RecordWrite(string(spec.Kind), common.OpUpdate)

	uc.logger.Infow("child updated successfully", "kind", spec.Kind, "id", cmd.ID)
	return nil
}
