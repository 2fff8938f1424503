package usecases

import (
	"context"
	"time"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type CreateComplaintCommand struct {
	Fields             map[string]any
	PendingAttachments []string
	Actor              record.Actor
}

type CreateComplaintResult struct {
	ID          int64    `json:"id"`
	Status      string   `json:"complaint_status"`
	Urgency     string   `json:"response_speed,omitempty"`
	Attachments []string `json:"attachments"`
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	attachments   common.AttachmentManager
	authorizer    record.Authorizer
	recorder      common.WriteRecorder
	now           func() time.Time
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	attachments common.AttachmentManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *CreateComplaintUseCase {
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		attachments:   attachments,
		authorizer:    authorizer,
		recorder:      common.RecorderOrNop(recorder),
		now:           time.Now,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error) {
	uc.logger.Infow("executing create complaint use case", "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, record.KindComplaint, record.ActionCreate); err != nil {
		return nil, err
	}

	fields, err := record.BuildEditSet(cmd.Fields, complaint.AllowList)
	if err != nil {
		uc.logger.Warnw("invalid complaint payload", "error", err)
		return nil, err
	}

	complaint.ApplyDerivations(fields, true)
	record.StampCreate(fields, cmd.Actor, uc.now().UTC())

	id, err := uc.complaintRepo.Create(ctx, fields)
	if err != nil {
		uc.logger.Errorw("failed to create complaint", "error", err)
		return nil, errors.WrapStorage(err, "failed to save complaint")
	}
	uc.recorder.RecordWrite(string(record.KindComplaint), common.OpCreate)

	promoted := common.PromotePending(ctx, uc.attachments, id, cmd.PendingAttachments, uc.logger)

	uc.logger.Infow("complaint created successfully", "complaint_id", id, "status", fields.String(complaint.ColStatus))

	return &CreateComplaintResult{
		ID:          id,
		Status:      fields.String(complaint.ColStatus),
		Urgency:     fields.String(complaint.ColResponseSpeed),
		Attachments: promoted,
	}, nil
}
