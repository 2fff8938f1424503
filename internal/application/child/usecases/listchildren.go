package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type ListChildrenUseCase struct {
	children record.ChildRepository
	parents  record.ParentChecker
	logger   logger.Interface
}

func NewListChildrenUseCase(children record.ChildRepository, parents record.ParentChecker, logger logger.Interface) *ListChildrenUseCase {
	return &ListChildrenUseCase{
		children: children,
		parents:  parents,
		logger:   logger,
	}
}

func (uc *ListChildrenUseCase) Execute(ctx context.Context, parentID int64) ([]*dto.RecordDTO, error) {
	spec := uc.children.Spec()
	if err := requireParent(ctx, uc.parents, spec, parentID); err != nil {
		return nil, err
	}

	rows, err := uc.children.ListByParent(ctx, parentID)
	if err != nil {
		uc.logger.Errorw("failed to list children", "kind", spec.Kind, "parent_id", parentID, "error", err)
		return nil, errors.WrapStorage(err, "failed to list "+spec.Kind.Label()+" rows")
	}
	return dto.FromChildren(spec, rows), nil
}
