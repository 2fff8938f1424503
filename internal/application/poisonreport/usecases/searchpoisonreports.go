package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type SearchPoisonReportsUseCase struct {
	reportRepo poisonreport.Repository
	logger     logger.Interface
}

func NewSearchPoisonReportsUseCase(reportRepo poisonreport.Repository, logger logger.Interface) *SearchPoisonReportsUseCase {
	return &SearchPoisonReportsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *SearchPoisonReportsUseCase) Execute(ctx context.Context, filter poisonreport.SearchFilter) ([]*dto.RecordDTO, error) {
	if filter.Limit < 0 {
		return nil, errors.NewValidationError("limit must not be negative")
	}
	if filter.Limit > constants.MaxListLimit {
		filter.Limit = constants.MaxListLimit
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, errors.NewValidationError("date_to must not be before date_from")
	}

	items, err := uc.reportRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search poison reports", "error", err)
		return nil, errors.WrapStorage(err, "failed to search poison reports")
	}

	uc.logger.Debugw("poison reports searched", "query", filter.Query, "count", len(items))
	return dto.FromPoisonReports(items), nil
}
