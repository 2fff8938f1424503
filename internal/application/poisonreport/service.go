// Package poisonreport wires the poison report, contact and meal use cases
// behind one service for the HTTP layer.
package poisonreport

import (
	"context"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/application/common/dto"
	"github.com/shjfcs/foodwatch/internal/application/poisonreport/usecases"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	createReport  *usecases.CreatePoisonReportUseCase
	updateReport  *usecases.UpdatePoisonReportUseCase
	deleteReport  *usecases.DeletePoisonReportUseCase
	getReport     *usecases.GetPoisonReportUseCase
	searchReports *usecases.SearchPoisonReportsUseCase

	createContact      *childuc.CreateChildUseCase
	bulkCreateContacts *childuc.BulkCreateChildrenUseCase
	updateContact      *childuc.UpdateChildUseCase
	deleteContact      *childuc.DeleteChildUseCase
	listContacts       *childuc.ListChildrenUseCase

	createMeal *childuc.CreateChildUseCase
	updateMeal *childuc.UpdateChildUseCase
	deleteMeal *childuc.DeleteChildUseCase
	listMeals  *childuc.ListChildrenUseCase
}

func NewServiceDDD(
	reportRepo poisonreport.Repository,
	contactRepo record.ChildRepository,
	mealRepo record.ChildRepository,
	attachments common.AttachmentManager,
	txManager common.TransactionManager,
	authorizer record.Authorizer,
	recorder common.WriteRecorder,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,

		createReport:  usecases.NewCreatePoisonReportUseCase(reportRepo, attachments, authorizer, recorder, logger),
		updateReport:  usecases.NewUpdatePoisonReportUseCase(reportRepo, attachments, authorizer, recorder, logger),
		deleteReport:  usecases.NewDeletePoisonReportUseCase(reportRepo, contactRepo, mealRepo, attachments, txManager, authorizer, recorder, logger),
		getReport:     usecases.NewGetPoisonReportUseCase(reportRepo, logger),
		searchReports: usecases.NewSearchPoisonReportsUseCase(reportRepo, logger),

		createContact:      childuc.NewCreateChildUseCase(contactRepo, reportRepo, authorizer, recorder, logger),
		bulkCreateContacts: childuc.NewBulkCreateChildrenUseCase(contactRepo, reportRepo, authorizer, recorder, logger),
		updateContact:      childuc.NewUpdateChildUseCase(contactRepo, authorizer, recorder, logger),
		deleteContact:      childuc.NewDeleteChildUseCase(contactRepo, authorizer, recorder, logger),
		listContacts:       childuc.NewListChildrenUseCase(contactRepo, reportRepo, logger),

		createMeal: childuc.NewCreateChildUseCase(mealRepo, reportRepo, authorizer, recorder, logger),
		updateMeal: childuc.NewUpdateChildUseCase(mealRepo, authorizer, recorder, logger),
		deleteMeal: childuc.NewDeleteChildUseCase(mealRepo, authorizer, recorder, logger),
		listMeals:  childuc.NewListChildrenUseCase(mealRepo, reportRepo, logger),
	}
}

func (s *ServiceDDD) CreateReport(ctx context.Context, cmd usecases.CreatePoisonReportCommand) (*usecases.CreatePoisonReportResult, error) {
	return s.createReport.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateReport(ctx context.Context, cmd usecases.UpdatePoisonReportCommand) (*usecases.UpdatePoisonReportResult, error) {
	return s.updateReport.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeleteReport(ctx context.Context, cmd usecases.DeletePoisonReportCommand) error {
	return s.deleteReport.Execute(ctx, cmd)
}

func (s *ServiceDDD) GetReport(ctx context.Context, id int64) (*dto.RecordDTO, error) {
	return s.getReport.Execute(ctx, id)
}

func (s *ServiceDDD) SearchReports(ctx context.Context, filter poisonreport.SearchFilter) ([]*dto.RecordDTO, error) {
	return s.searchReports.Execute(ctx, filter)
}

func (s *ServiceDDD) CreateContact(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error) {
	return s.createContact.Execute(ctx, cmd)
}

func (s *ServiceDDD) BulkCreateContacts(ctx context.Context, cmd childuc.BulkCreateChildrenCommand) (*childuc.BulkCreateChildrenResult, error) {
	return s.bulkCreateContacts.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateContact(ctx context.Context, cmd childuc.UpdateChildCommand) error {
	return s.updateContact.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeleteContact(ctx context.Context, cmd childuc.DeleteChildCommand) error {
	return s.deleteContact.Execute(ctx, cmd)
}

func (s *ServiceDDD) ListContacts(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error) {
	return s.listContacts.Execute(ctx, reportID)
}

func (s *ServiceDDD) CreateMeal(ctx context.Context, cmd childuc.CreateChildCommand) (*childuc.CreateChildResult, error) {
	return s.createMeal.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateMeal(ctx context.Context, cmd childuc.UpdateChildCommand) error {
	return s.updateMeal.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeleteMeal(ctx context.Context, cmd childuc.DeleteChildCommand) error {
	return s.deleteMeal.Execute(ctx, cmd)
}

func (s *ServiceDDD) ListMeals(ctx context.Context, reportID int64) ([]*dto.RecordDTO, error) {
	return s.listMeals.Execute(ctx, reportID)
}
