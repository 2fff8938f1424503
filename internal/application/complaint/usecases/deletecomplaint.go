package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type DeleteComplaintCommand struct {
	ID    int64
	Actor record.Actor
}

type DeleteComplaintUseCase struct {
	complaintRepo complaint.Repository
	productRepo   record.ChildRepository
	attachments   common.AttachmentManager
	txManager     common.TransactionManager
	authorizer    record.Authorizer
	recorder      common.WriteRecorder
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(
	complaintRepo complaint.Repository,
	productRepo record.ChildRepository,
	attachments common.AttachmentManager,
	txManager common.TransactionManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		productRepo:   productRepo,
		attachments:   attachments,
		txManager:     txManager,
		authorizer:    authorizer,
		recorder:      common.RecorderOrNop(recorder),
		logger:        logger,
	}
}

// Execute removes the products and the complaint row in one transaction and
// deletes the attachment file once the rows are gone.
func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, cmd DeleteComplaintCommand) error {
	uc.logger.Infow("executing delete complaint use case", "complaint_id", cmd.ID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, record.KindComplaint, record.ActionDelete); err != nil {
		return err
	}

	var names []string
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.attachments.LockFiles(txCtx, cmd.ID)
		if err != nil {
			return err
		}
		names = locked

		if err := uc.productRepo.DeleteByParent(txCtx, cmd.ID); err != nil {
			return err
		}
		return uc.complaintRepo.Delete(txCtx, cmd.ID)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to delete complaint", "complaint_id", cmd.ID, "error", err)
		}
		return errors.WrapStorage(err, "failed to delete complaint")
	}
	uc.recorder.RecordWrite(string(record.KindComplaint), common.OpDelete)

	uc.attachments.PurgeAll(ctx, cmd.ID, names)

	uc.logger.Infow("complaint deleted successfully", "complaint_id", cmd.ID, "purged", len(names))
	return nil
}
