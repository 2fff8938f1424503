package http

import (
	complaintApp "github.com/shjfcs/foodwatch/internal/application/complaint"
	poisonReportApp "github.com/shjfcs/foodwatch/internal/application/poisonreport"
	"github.com/shjfcs/foodwatch/internal/application/upload"
	"github.com/shjfcs/foodwatch/internal/shared/db"
)

// services holds the application services and attachment managers.
type services struct {
	stager            *upload.Stager
	complaintFiles    *upload.Manager
	poisonReportFiles *upload.Manager

	complaintService    *complaintApp.ServiceDDD
	poisonReportService *poisonReportApp.ServiceDDD
}

func (c *Container) initServices() {
	log := c.log
	txManager := db.NewTransactionManager(c.db)

	stager := upload.NewStager(c.store, upload.PolicyFromConfig(c.cfg.Attachments), c.metrics, log.Named("attachments"))
	complaintFiles := upload.NewManager(c.store, c.repos.complaintFiles, stager, c.metrics, log.Named("attachments"))
	poisonReportFiles := upload.NewManager(c.store, c.repos.poisonReportFiles, stager, c.metrics, log.Named("attachments"))

	c.svcs = &services{
		stager:            stager,
		complaintFiles:    complaintFiles,
		poisonReportFiles: poisonReportFiles,
		complaintService: complaintApp.NewServiceDDD(
			c.repos.complaintRepo,
			c.repos.productRepo,
			complaintFiles,
			txManager,
			c.enforcer,
			c.metrics,
			log.Named("complaints"),
		),
		poisonReportService: poisonReportApp.NewServiceDDD(
			c.repos.poisonReportRepo,
			c.repos.contactRepo,
			c.repos.mealRepo,
			poisonReportFiles,
			txManager,
			c.enforcer,
			c.metrics,
			log.Named("poison_reports"),
		),
	}
}
