package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(complaintRepo complaint.Repository, logger logger.Interface) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, id int64) (*dto.RecordDTO, error) {
	c, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to get complaint", "complaint_id", id, "error", err)
		}
		return nil, errors.WrapStorage(err, "failed to load complaint")
	}
	return dto.FromComplaint(c), nil
}
