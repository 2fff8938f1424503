package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type GetPoisonReportUseCase struct {
	reportRepo poisonreport.Repository
	logger     logger.Interface
}

func NewGetPoisonReportUseCase(reportRepo poisonreport.Repository, logger logger.Interface) *GetPoisonReportUseCase {
	return &GetPoisonReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *GetPoisonReportUseCase) Execute(ctx context.Context, id int64) (*dto.RecordDTO, error) {
	r, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to get poison report", "poison_report_id", id, "error", err)
		}
		return nil, errors.WrapStorage(err, "failed to load poison report")
	}
	return dto.FromPoisonReport(r), nil
}
