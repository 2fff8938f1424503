package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type DeletePoisonReportCommand struct {
	ID    int64
	Actor record.Actor
}

type DeletePoisonReportUseCase struct {
	reportRepo  poisonreport.Repository
	contactRepo record.ChildRepository
	mealRepo    record.ChildRepository
	attachments common.AttachmentManager
	txManager   common.TransactionManager
	authorizer  record.Authorizer
	recorder    common.WriteRecorder
	logger      logger.Interface
}

func NewDeletePoisonReportUseCase(
	reportRepo poisonreport.Repository,
	contactRepo record.ChildRepository,
	mealRepo record.ChildRepository,
	attachments common.AttachmentManager,
	txManager common.TransactionManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *DeletePoisonReportUseCase {
	return &DeletePoisonReportUseCase{
		reportRepo:  reportRepo,
		contactRepo: contactRepo,
		mealRepo:    mealRepo,
		attachments: attachments,
		txManager:   txManager,
		authorizer:  authorizer,
		recorder:    common.RecorderOrNop(recorder),
		logger:      logger,
	}
}

// Execute removes contacts, meals and the report row in one transaction and
// deletes the attachment files after commit.
func (uc *DeletePoisonReportUseCase) Execute(ctx context.Context, cmd DeletePoisonReportCommand) error {
	uc.logger.Infow("executing delete poison report use case", "poison_report_id", cmd.ID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, record.KindPoisonReport, record.ActionDelete); err != nil {
		return err
	}

	var names []string
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.attachments.LockFiles(txCtx, cmd.ID)
		if err != nil {
			return err
		}
		names = locked

		if err := uc.contactRepo.DeleteByParent(txCtx, cmd.ID); err != nil {
			return err
		}
		if err := uc.mealRepo.DeleteByParent(txCtx, cmd.ID); err != nil {
			return err
		}
		return uc.reportRepo.Delete(txCtx, cmd.ID)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to delete poison report", "poison_report_id", cmd.ID, "error", err)
		}
		return errors.WrapStorage(err, "failed to delete poison report")
	}
	uc.recorder.RecordWrite(string(record.KindPoisonReport), common.OpDelete)

	uc.attachments.PurgeAll(ctx, cmd.ID, names)

	uc.logger.Infow("poison report deleted successfully", "poison_report_id", cmd.ID, "purged", len(names))
	return nil
}
