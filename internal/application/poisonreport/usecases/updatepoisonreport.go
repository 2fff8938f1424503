package usecases

import (
	"context"
	"time"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type UpdatePoisonReportCommand struct {
	ID                 int64
	Fields             map[string]any
	PendingAttachments []string
	Actor              record.Actor
}

type UpdatePoisonReportResult struct {
	ID          int64    `json:"id"`
	Attachments []string `json:"attachments"`
}

type UpdatePoisonReportUseCase struct {
	reportRepo  poisonreport.Repository
	attachments common.AttachmentManager
	authorizer  record.Authorizer
	recorder    common.WriteRecorder
	now         func() time.Time
	logger      logger.Interface
}

func NewUpdatePoisonReportUseCase(
	reportRepo poisonreport.Repository,
	attachments common.AttachmentManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *UpdatePoisonReportUseCase {
	return &UpdatePoisonReportUseCase{
		reportRepo:  reportRepo,
		attachments: attachments,
		authorizer:  authorizer,
		recorder:    common.RecorderOrNop(recorder),
		now:         time.Now,
		logger:      logger,
	}
}

func (uc *UpdatePoisonReportUseCase) Execute(ctx context.Context, cmd UpdatePoisonReportCommand) (*UpdatePoisonReportResult, error) {
	uc.logger.Infow("executing update poison report use case", "poison_report_id", cmd.ID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, record.KindPoisonReport, record.ActionUpdate); err != nil {
		return nil, err
	}
	if cmd.ID <= 0 {
		return nil, errors.NewValidationError("poison report id is required")
	}

	fields, err := record.BuildEditSet(cmd.Fields, poisonreport.AllowList)
	if err != nil {
		uc.logger.Warnw("invalid poison report edit", "poison_report_id", cmd.ID, "error", err)
		return nil, err
	}
	record.StampUpdate(fields, cmd.Actor, uc.now().UTC())

	if err := uc.reportRepo.Update(ctx, cmd.ID, fields); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update poison report", "poison_report_id", cmd.ID, "error", err)
		}
		return nil, errors.WrapStorage(err, "failed to save poison report")
	}
	uc.recorder.RecordWrite(string(record.KindPoisonReport), common.OpUpdate)

	promoted := common.PromotePending(ctx, uc.attachments, cmd.ID, cmd.PendingAttachments, uc.logger)

	uc.logger.Infow("poison report updated successfully", "poison_report_id", cmd.ID, "columns", fields.Columns())
	return &UpdatePoisonReportResult{ID: cmd.ID, Attachments: promoted}, nil
}
