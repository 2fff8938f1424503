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

type UpdateComplaintCommand struct {
	ID                 int64
	Fields             map[string]any
	PendingAttachments []string
	Actor              record.Actor
}

// UpdateComplaintResult echoes the derived columns so the form can refresh
// without a second fetch. Status and Urgency are empty when the edit did not
// touch them.
type UpdateComplaintResult struct {
	ID          int64    `json:"id"`
	Status      string   `json:"complaint_status,omitempty"`
	Urgency     string   `json:"response_speed,omitempty"`
	Attachments []string `json:"attachments"`
}

type UpdateComplaintUseCase struct {
	complaintRepo complaint.Repository
	attachments   common.AttachmentManager
	authorizer    record.Authorizer
	recorder      common.WriteRecorder
	now           func() time.Time
	logger        logger.Interface
}

func NewUpdateComplaintUseCase(
	complaintRepo complaint.Repository,
	attachments common.AttachmentManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *UpdateComplaintUseCase {
	return &UpdateComplaintUseCase{
		complaintRepo: complaintRepo,
		attachments:   attachments,
		authorizer:    authorizer,
		recorder:      common.RecorderOrNop(recorder),
		now:           time.Now,
		logger:        logger,
	}
}

func (uc *UpdateComplaintUseCase) Execute(ctx context.Context, cmd UpdateComplaintCommand) (*UpdateComplaintResult, error) {
	uc.logger.Infow("executing update complaint use case", "complaint_id", cmd.ID, "empid", cmd.Actor.EmpID)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, record.KindComplaint, record.ActionUpdate); err != nil {
		return nil, err
	}
	if cmd.ID <= 0 {
		return nil, errors.NewValidationError("complaint id is required")
	}

	fields, err := record.BuildEditSet(cmd.Fields, complaint.AllowList)
	if err != nil {
		uc.logger.Warnw("invalid complaint edit", "complaint_id", cmd.ID, "error", err)
		return nil, err
	}

	complaint.ApplyDerivations(fields, false)
	if fields.Len() == 0 {
		return nil, errors.NewValidationError("no fields to update")
	}
	record.StampUpdate(fields, cmd.Actor, uc.now().UTC())

	if err := uc.complaintRepo.Update(ctx, cmd.ID, fields); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update complaint", "complaint_id", cmd.ID, "error", err)
		}
		return nil, errors.WrapStorage(err, "failed to save complaint")
	}
	uc.recorder.RecordWrite(string(record.KindComplaint), common.OpUpdate)

	promoted := common.PromotePending(ctx, uc.attachments, cmd.ID, cmd.PendingAttachments, uc.logger)

	uc.logger.Infow("complaint updated successfully", "complaint_id", cmd.ID, "columns", fields.Columns())

	return &UpdateComplaintResult{
		ID:          cmd.ID,
		Status:      fields.String(complaint.ColStatus),
		Urgency:     fields.String(complaint.ColResponseSpeed),
		Attachments: promoted,
	}, nil
}
