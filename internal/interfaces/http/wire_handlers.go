package http

import (
	"github.com/shjfcs/foodwatch/internal/interfaces/http/handlers"
	attachmentHandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/attachment"
	complaintHandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/complaint"
	poisonReportHandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/poisonreport"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	complaintHandler    *complaintHandlers.Handler
	poisonReportHandler *poisonReportHandlers.Handler
	attachmentHandler   *attachmentHandlers.Handler
}

func (c *Container) initHandlers() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		healthHandler:       handlers.NewHealthHandler(sqlDB, c.log),
		complaintHandler:    complaintHandlers.NewHandler(c.svcs.complaintService, c.log),
		poisonReportHandler: poisonReportHandlers.NewHandler(c.svcs.poisonReportService, c.log),
		attachmentHandler: attachmentHandlers.NewHandler(
			c.svcs.stager,
			[]attachmentHandlers.Owner{c.svcs.complaintFiles, c.svcs.poisonReportFiles},
			c.log,
		),
	}
	return nil
}
