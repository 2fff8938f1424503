package complaint

import (
	"context"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/application/complaint/usecases"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
)

// Service is the complaint application surface the handler drives.
type Service interface {
	CreateComplaint(ctx context.Context, cmd usecases.CreateComplaintCommand) (*usecases.CreateComplaintResult, error)
	UpdateComplaint(ctx context.Context, cmd usecases.UpdateComplaintCommand) (*usecases.UpdateComplaintResult, error)
	DeleteComplaint(ctx context.Context, cmd usecases.DeleteComplaintCommand) error
	GetComplaint(ctx context.Context, id int64) (*dto.RecordDTO, error)
	ListComplaints(ctx context.Context, filter complaint.ListFilter) ([]*dto.RecordDTO, error)
	Lookups() *usecases.Lookups

	CreateProduct(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error)
	BulkCreateProducts(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error)
	UpdateProduct(ctx context.Context, cmd childuc.UpdateChildCommand) error
	DeleteProduct(ctx context.Context, cmd childuc.DeleteChildCommand) error
	ListProducts(ctx context.Context, complaintID int64) ([]*dto.RecordDTO, error)
}
