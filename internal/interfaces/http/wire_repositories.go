package http

import (
	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	complaintRepo    complaint.Repository
	productRepo      record.ChildRepository
	poisonReportRepo poisonreport.Repository
	contactRepo      record.ChildRepository
	mealRepo         record.ChildRepository

	complaintFiles    attachment.OwnerRepository
	poisonReportFiles attachment.OwnerRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		complaintRepo:     repository.NewComplaintRepository(c.db),
		productRepo:       repository.NewProductRepository(c.db),
		poisonReportRepo:  repository.NewPoisonReportRepository(c.db),
		contactRepo:       repository.NewContactRepository(c.db),
		mealRepo:          repository.NewMealRepository(c.db),
		complaintFiles:    repository.NewComplaintAttachmentRepository(c.db),
		poisonReportFiles: repository.NewPoisonReportAttachmentRepository(c.db),
	}
}
