// Package complaint wires the complaint and product use cases behind one
// service for the HTTP layer.
package complaint

import (
	"context"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/application/complaint/usecases"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	createComplaint *usecases.CreateComplaintUseCase
	updateComplaint *usecases.UpdateComplaintUseCase
	deleteComplaint *usecases.DeleteComplaintUseCase
	getComplaint    *usecases.GetComplaintUseCase
	listComplaints  *usecases.ListComplaintsUseCase
	getLookups      *usecases.GetLookupsUseCase

	createProduct      *childuc.CreateChildUseCase
	bulkCreateProducts *childuc.BulkCreateChildrenUseCase
	updateProduct      *childuc.UpdateChildUseCase
	deleteProduct      *childuc.DeleteChildUseCase
	listProducts       *childuc.ListChildrenUseCase
}

func NewServiceDDD(
	complaintRepo complaint.Repository,
	productRepo record.ChildRepository,
	attachments common.AttachmentManager,
	txManager common.TransactionManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,

		createComplaint: usecases.NewCreateComplaintUseCase(complaintRepo, attachments, authorizer, recorder, logger),
		updateComplaint: usecases.NewUpdateComplaintUseCase(complaintRepo, attachments, authorizer, recorder, logger),
		deleteComplaint: usecases.NewDeleteComplaintUseCase(complaintRepo, productRepo, attachments, txManager, authorizer, recorder, logger),
		getComplaint:    usecases.NewGetComplaintUseCase(complaintRepo, logger),
		listComplaints:  usecases.NewListComplaintsUseCase(complaintRepo, logger),
		getLookups:      usecases.NewGetLookupsUseCase(),

		createProduct:      childuc.NewCreateChildUseCase(productRepo, complaintRepo, authorizer, recorder, logger),
		bulkCreateProducts: childuc.NewBulkCreateChildrenUseCase(productRepo, complaintRepo, authorizer, recorder, logger),
		updateProduct:      childuc.NewUpdateChildUseCase(productRepo, authorizer, recorder, logger),
		deleteProduct:      childuc.NewDeleteChildUseCase(productRepo, authorizer, recorder, logger),
		listProducts:       childuc.NewListChildrenUseCase(productRepo, complaintRepo, logger),
	}
}

func (s *ServiceDDD) CreateComplaint(ctx context.Context, cmd usecases.CreateComplaintCommand) (*usecases.CreateComplaintResult, error) {
	return s.createComplaint.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateComplaint(ctx context.Context, cmd usecases.UpdateComplaintCommand) (*usecases.UpdateComplaintResult, error) {
	return s.updateComplaint.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeleteComplaint(ctx context.Context, cmd usecases.DeleteComplaintCommand) error {
	return s.deleteComplaint.Execute(ctx, cmd)
}

func (s *ServiceDDD) GetComplaint(ctx context.Context, id int64) (*dto.RecordDTO, error) {
	return s.getComplaint.Execute(ctx, id)
}

func (s *ServiceDDD) ListComplaints(ctx context.Context, filter complaint.ListFilter) ([]*dto.RecordDTO, error) {
	return s.listComplaints.Execute(ctx, filter)
}

func (s *ServiceDDD) Lookups() *usecases.Lookups {
	return s.getLookups.Execute()
}

func (s *ServiceDDD) CreateProduct(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error) {
	return s.createProduct.Execute(ctx, cmd)
}

func (s *ServiceDDD) BulkCreateProducts(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error) {
	return s.bulkCreateProducts.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateProduct(ctx context.Context, cmd childuc.UpdateChildCommand) error {
	return s.updateProduct.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeleteProduct(ctx context.Context, cmd childuc.DeleteChildCommand) error {
	return s.deleteProduct.Execute(ctx, cmd)
}

func (s *ServiceDDD) ListProducts(ctx context.Context, complaintID int64) ([]*dto.RecordDTO, error) {
	return s.listProducts.Execute(ctx, complaintID)
}
