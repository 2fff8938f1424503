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

type CreatePoisonReportCommand struct {
	Fields             map[string]any
	PendingAttachments []string
	Actor              record.Actor
}

type CreatePoisonReportResult struct {
	ID          int64    `json:"id"`
	Attachments []string `json:"attachments"`
}

type CreatePoisonReportUseCase struct {
	reportRepo  poisonreport.Repository
	attachments common.AttachmentManager
	authorizer  record.Authorizer
	recorder    common.WriteRecorder
	now         func() time.Time
	logger      logger.Interface
}

func NewCreatePoisonReportUseCase(
	reportRepo poisonreport.Repository,
	attachments common.AttachmentManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *CreatePoisonReportUseCase {
	return &CreatePoisonReportUseCase{
		reportRepo:  reportRepo,
		attachments: attachments,
		authorizer:  authorizer,
		recorder:    common.RecorderOrNop(recorder),
		now:         time.Now,
		logger:      logger,
	}
}

func (uc *CreatePoisonReportUseCase) Execute(ctx context.Context, cmd CreatePoisonReportCommand) (*CreatePoisonReportResult, error) {
	uc.logger.Infow("executing create poison report use case", "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, record.KindPoisonReport, record.ActionCreate); err != nil {
		return nil, err
	}

	fields, err := record.BuildEditSet(cmd.Fields, poisonreport.AllowList)
	if err != nil {
		uc.logger.Warnw("invalid poison report payload", "error", err)
		return nil, err
	}
	record.StampCreate(fields, cmd.Actor, uc.now().UTC())

	id, err := uc.reportRepo.Create(ctx, fields)
	if err != nil {
		uc.logger.Errorw("failed to create poison report", "error", err)
		return nil, errors.WrapStorage(err, "failed to save poison report")
	}
	uc.recorder.RecordWrite(string(record.KindPoisonReport), common.OpCreate)

	promoted := common.PromotePending(ctx, uc.attachments, id, cmd.PendingAttachments, uc.logger)

	uc.logger.Infow("poison report created successfully", "poison_report_id", id, "attachments", len(promoted))
	return &CreatePoisonReportResult{ID: id, Attachments: promoted}, nil
}
