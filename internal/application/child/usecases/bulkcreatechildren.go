package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type BulkCreateChildrenCommand struct {
	ParentID int64
	Rows     []map[string]any
	Actor    record.Actor
}

type BulkCreateChildrenResult struct {
	ParentID int64 `json:"parent_id"`
	Inserted int   `json:"inserted"`
}

// BulkCreateChildrenUseCase inserts all rows or none.
type BulkCreateChildrenUseCase struct {
	children   record.ChildRepository
	parents    record.ParentChecker
	authorizer record.Authorizer
	recorder   common.WriteRecorder
	now        func() time.Time
	logger     logger.Interface
}

func NewBulkCreateChildrenUseCase(
	children record.ChildRepository,
	parents record.ParentChecker,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *BulkCreateChildrenUseCase {
	return &BulkCreateChildrenUseCase{
		children:   children,
		parents:    parents,
		authorizer: authorizer,
		recorder:   common.RecorderOrNop(recorder),
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *BulkCreateChildrenUseCase) Execute(ctx context.Context, cmd BulkCreateChildrenCommand) (*BulkCreateChildrenResult, error) {
	spec := uc.children.Spec()
	uc.logger.Infow("executing bulk create children use case",
		"kind", spec.Kind,
		"parent_id", cmd.ParentID,
		"rows", len(cmd.Rows),
		"empid", cmd.Actor.EmpID,
	)

	if err := uc.authorizer.Authorize(ctx, cmd.Actor, spec.Kind, record.ActionCreate); err != nil {
		return nil, err
	}
	if err := requireParent(ctx, uc.parents, spec, cmd.ParentID); err != nil {
		return nil, err
	}
	if len(cmd.Rows) == 0 {
		return nil, errors.NewValidationError("no rows to insert")
	}

	now := uc.now().UTC()
	rows := make([]*record.Fields, 0, len(cmd.Rows))
	for i, raw := range cmd.Rows {
		fields, err := record.BuildEditSet(raw, spec.AllowList)
		if err != nil {
			return nil, rowValidationError(i, err)
		}
		if col, missing := spec.MissingRequired(fields); missing {
			return nil, errors.NewValidationError(fmt.Sprintf("row %d: %s is required", i+1, col))
		}
		record.StampCreate(fields, cmd.Actor, now)
		rows = append(rows, fields)
	}

	if err := uc.children.CreateBatch(ctx, cmd.ParentID, rows); err != nil {
		uc.logger.Errorw("bulk insert rolled back", "kind", spec.Kind, "parent_id", cmd.ParentID, "error", err)
		return nil, rowStorageError(spec, err)
	}
	uc.recorder.RecordWrite(string(spec.Kind), common.OpCreate)

	uc.logger.Infow("children created successfully", "kind", spec.Kind, "parent_id", cmd.ParentID, "inserted", len(rows))
	return &BulkCreateChildrenResult{ParentID: cmd.ParentID, Inserted: len(rows)}, nil
}

func rowValidationError(i int, err error) error {
	if appErr := errors.GetAppError(err); appErr != nil {
		return errors.NewValidationError(fmt.Sprintf("row %d: %s", i+1, appErr.Message), appErr.Details)
	}
	return errors.NewValidationError(fmt.Sprintf("row %d: %v", i+1, err))
}

// rowStorageError names the failing row without exposing the driver error.
func rowStorageError(spec record.ChildSpec, err error) error {
	var rowErr *record.RowError
	if !stderrors.As(err, &rowErr) {
		return errors.WrapStorage(err, "failed to save "+spec.Kind.Label()+" rows")
	}
	if appErr := errors.GetAppError(rowErr.Err); appErr != nil && appErr.Type != errors.ErrorTypeStorage {
		return &errors.AppError{
			Type:    appErr.Type,
			Code:    appErr.Code,
			Message: fmt.Sprintf("row %d: %s", rowErr.Row+1, appErr.Message),
			Details: appErr.Details,
		}
	}
	return errors.NewStorageError(fmt.Sprintf("row %d: failed to save %s", rowErr.Row+1, spec.Kind.Label()))
}
