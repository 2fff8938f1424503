package poisonreport

import (
	"context"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/application/poisonreport/usecases"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
)

// Service is the poison report application surface the handler drives.
type Service interface {
	CreateReport(ctx context.Context, cmd usecases.CreatePoisonReportCommand) (*usecases.CreatePoisonReportResult, error)
	UpdateReport(ctx context.Context, cmd usecases.UpdatePoisonReportCommand) (*usecases.UpdatePoisonReportResult, error)
	DeleteReport(ctx context.Context, cmd usecases.DeletePoisonReportCommand) error
	GetReport(ctx context.Context, id int64) (*dto.RecordDTO, error)
	SearchReports(ctx context.Context, filter poisonreport.SearchFilter) ([]*dto.RecordDTO, error)

	CreateContact(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error)
	BulkCreateContacts(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error)
	UpdateContact(ctx context.Context, cmd childuc.UpdateChildCommand) error
	DeleteContact(ctx context.Context, cmd childuc.DeleteChildCommand) error
	ListContacts(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error)

	CreateMeal(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error)
	UpdateMeal(ctx context.Context, cmd childuc.UpdateChildCommand) error
	DeleteMeal(ctx context.Context, cmd childuc.DeleteChildCommand) error
	ListMeals(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error)
}
