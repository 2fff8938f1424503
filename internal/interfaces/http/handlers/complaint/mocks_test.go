package complaint

import (
	"context"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/application/complaint/usecases"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
)

type mockService struct {
	CreateComplaintFunc    func(ctx context.Context, cmd usecases.CreateComplaintCommand) (*usecases.CreateComplaintResult, error)
	UpdateComplaintFunc    func(ctx context.Context, cmd usecases.UpdateComplaintCommand) (*usecases.UpdateComplaintResult, error)
	DeleteComplaintFunc    func(ctx context.Context, cmd usecases.DeleteComplaintCommand) error
	GetComplaintFunc       func(ctx context.Context, id int64) (*dto.RecordDTO, error)
	ListComplaintsFunc     func(ctx context.Context, filter complaint.ListFilter) ([]*dto.RecordDTO, error)
	CreateProductFunc      func(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error)
	BulkCreateProductsFunc func(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error)
	UpdateProductFunc      func(ctx context.Context, cmd childuc.UpdateChildCommand) error
	DeleteProductFunc      func(ctx context.Context, cmd childuc.DeleteChildCommand) error
	ListProductsFunc       func(ctx context.Context, complaintID int64) ([]*dto.RecordDTO, error)
}

func (m *mockService) CreateComplaint(ctx context.Context, cmd usecases.CreateComplaintCommand) (*usecases.CreateComplaintResult, error) {
	if m.CreateComplaintFunc != nil {
		return m.CreateComplaintFunc(ctx, cmd)
	}
	return &usecases.CreateComplaintResult{ID: 1}, nil
}

func (m *mockService) UpdateComplaint(ctx context.Context, cmd usecases.UpdateComplaintCommand) (*usecases.UpdateComplaintResult, error) {
	if m.UpdateComplaintFunc != nil {
		return m.UpdateComplaintFunc(ctx, cmd)
	}
	return &usecases.UpdateComplaintResult{ID: cmd.ID}, nil
}

func (m *mockService) DeleteComplaint(ctx context.Context, cmd usecases.DeleteComplaintCommand) error {
	if m.DeleteComplaintFunc != nil {
		return m.DeleteComplaintFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) GetComplaint(ctx context.Context, id int64) (*dto.RecordDTO, error) {
	if m.GetComplaintFunc != nil {
		return m.GetComplaintFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockService) ListComplaints(ctx context.Context, filter complaint.ListFilter) ([]*dto.RecordDTO, error) {
	if m.ListComplaintsFunc != nil {
		return m.ListComplaintsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockService) Lookups() *usecases.Lookups {
	return &usecases.Lookups{DefaultStatus: "Open", ClosedStatus: "Closed"}
}

func (m *mockService) CreateProduct(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, cmd)
	}
	return &childuc.CreateChildResult{ID: 1, ParentID: cmd.ParentID}, nil
}

func (m *mockService) BulkCreateProducts(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error) {
	if m.BulkCreateProductsFunc != nil {
		return m.BulkCreateProductsFunc(ctx, cmd)
	}
	return &childuc.BulkCreateChildrenResult{ParentID: cmd.ParentID, Inserted: len(cmd.Rows)}, nil
}

func (m *mockService) UpdateProduct(ctx context.Context, cmd childuc.UpdateChildCommand) error {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) DeleteProduct(ctx context.Context, cmd childuc.DeleteChildCommand) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, cmd)
	}
	return nil
}

func (m *mockService) ListProducts(ctx context.Context, complaintID int64) ([]*dto.RecordDTO, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, complaintID)
	}
	return nil, nil
}
