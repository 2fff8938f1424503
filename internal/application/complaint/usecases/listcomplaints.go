package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(complaintRepo complaint.Repository, logger logger.Interface) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, filter complaint.ListFilter) ([]*dto.RecordDTO, error) {
	if filter.Limit < 0 {
		return nil, errors.NewValidationError("limit must not be negative")
	}
	if filter.Limit > constants.MaxListLimit {
		filter.Limit = constants.MaxListLimit
	}

	items, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.WrapStorage(err, "failed to list complaints")
	}

	uc.logger.Debugw("complaints listed", "count", len(items))
	return dto.FromComplaints(items), nil
}
