package poisonreport

import (
	"context"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/application/poisonreport/usecases"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
)

type mockService struct {
	CreateReportFunc       func(ctx context.Context, cmd usecases.CreatePoisonReportCommand) (*usecases.CreatePoisonReportResult, error)
	UpdateReportFunc       func(ctx context.Context, cmd usecases.UpdatePoisonReportCommand) (*usecases.UpdatePoisonReportResult, error)
	DeleteReportFunc       func(ctx context.Context, cmd usecases.DeletePoisonReportCommand) error
	GetReportFunc          func(ctx context.Context, id int64) (*dto.RecordDTO, error)
	SearchReportsFunc      func(ctx context.Context, filter poisonreport.SearchFilter) ([]*dto.RecordDTO, error)
	CreateContactFunc      func(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error)
	BulkCreateContactsFunc func(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error)
	UpdateContactFunc      func(ctx context.Context, cmd childuc.UpdateChildCommand) error
	DeleteContactFunc      func(ctx context.Context, cmd childuc.DeleteChildCommand) error
	ListContactsFunc       func(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error)
	CreateMealFunc         func(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error)
	UpdateMealFunc         func(ctx context.Context, cmd childuc.UpdateChildCommand) error
	DeleteMealFunc         func(ctx context.Context, cmd childuc.DeleteChildCommand) error
	ListMealsFunc          func(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error)
}

func (m *mockService) CreateReport(ctx context.Context, cmd usecases.CreatePoisonReportCommand) (*usecases.CreatePoisonReportResult, error) {
	if m.CreateReportFunc != nil {
		return m.CreateReportFunc(ctx, cmd)
	}
	return &usecases.CreatePoisonReportResult{ID: 1, Attachments: []string{}}, nil
}

func (m *mockService) UpdateReport(ctx context.Context, cmd usecases.UpdatePoisonReportCommand) (*usecases.UpdatePoisonReportResult, error) {
	if m.UpdateReportFunc != nil {
		return m.UpdateReportFunc(ctx, cmd)
	}
	return &usecases.UpdatePoisonReportResult{ID: cmd.ID, Attachments: []string{}}, nil
}

func (m *mockService) DeleteReport(ctx context.Context, cmd usecases.DeletePoisonReportCommand) error {
	if m.DeleteReportFunc != nil {
		return m.DeleteReportFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) GetReport(ctx context.Context, id int64) (*dto.RecordDTO, error) {
	if m.GetReportFunc != nil {
		return m.GetReportFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockService) SearchReports(ctx context.Context, filter poisonreport.SearchFilter) ([]*dto.RecordDTO, error) {
	if m.SearchReportsFunc != nil {
		return m.SearchReportsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockService) CreateContact(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error) {
	if m.CreateContactFunc != nil {
		return m.CreateContactFunc(ctx, cmd)
	}
	return &childuc.CreateChildResult{ID: 1, ParentID: cmd.ParentID}, nil
}

func (m *mockService) BulkCreateContacts(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error) {
	if m.BulkCreateContactsFunc != nil {
		return m.BulkCreateContactsFunc(ctx, cmd)
	}
	return &childuc.BulkCreateChildrenResult{ParentID: cmd.ParentID, Inserted: len(cmd.Rows)}, nil
}

func (m *mockService) UpdateContact(ctx context.Context, cmd childuc.UpdateChildCommand) error {
	if m.UpdateContactFunc != nil {
		return m.UpdateContactFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) DeleteContact(ctx context.Context, cmd childuc.DeleteChildCommand) error {
	if m.DeleteContactFunc != nil {
		return m.DeleteContactFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) ListContacts(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error) {
	if m.ListContactsFunc != nil {
		return m.ListContactsFunc(ctx, reportID)
	}
	return nil, nil
}

func (m *mockService) CreateMeal(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error) {
	if m.CreateMealFunc != nil {
		return m.CreateMealFunc(ctx, cmd)
	}
	return &childuc.CreateChildResult{ID: 1, ParentID: cmd.ParentID}, nil
}

func (m *mockService) UpdateMeal(ctx context.Context, cmd childuc.UpdateChildCommand) error {
	if m.UpdateMealFunc != nil {
		return m.UpdateMealFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) DeleteMeal(ctx context.Context, cmd childuc.DeleteChildCommand) error {
	if m.DeleteMealFunc != nil {
		return m.DeleteMealFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) ListMeals(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error) {
	if m.ListMealsFunc != nil {
		return m.ListMealsFunc(ctx, reportID)
	}
	return nil, nil
}
