package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type DeleteChildCommand struct {
	ID    int64
	Actor record.Actor
}

type DeleteChildUseCase struct {
	children   record.ChildRepository
	authorizer record.Authorizer
	recorder   common.WriteRecorder
	logger     logger.Interface
}

func NewDeleteChildUseCase(
	children record.ChildRepository,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *DeleteChildUseCase {
	return &DeleteChildUseCase{
		children:   children,
		authorizer: authorizer,
		recorder:   common.RecorderOrNop(recorder),
		logger:     logger,
	}
}

func (uc *DeleteChildUseCase) Execute(ctx context.Context, cmd DeleteChildCommand) error {
	spec := uc.children.Spec()
	uc.logger.Infow("executing delete child use case", "kind", spec.Kind, "id", cmd.ID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, spec.Kind, record.ActionDelete); err != nil {
		return err
	}

	if err := uc.children.Delete(ctx, cmd.ID); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to delete child", "kind", spec.Kind, "id", cmd.ID, "error", err)
		}
		return errors.WrapStorage(err, "failed to delete "+spec.Kind.Label())
	}
	uc.recorder.RecordWrite(string(spec.Kind), common.OpDelete)

	uc.logger.Infow("child deleted successfully", "kind", spec.Kind, "id", cmd.ID)
	return nil
}
