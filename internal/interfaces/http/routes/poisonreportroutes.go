package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	attachmenthandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/attachment"
	poisonreporthandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/poisonreport"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/middleware"
)

type PoisonReportRouteConfig struct {
	PoisonReportHandler  *poisonreporthandlers.Handler
	AttachmentHandler    *attachmenthandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupPoisonReportRoutes(api *gin.RouterGroup, config *PoisonReportRouteConfig) {
	requireAuth := config.AuthMiddleware.RequireAuth()
	optionalAuth := config.AuthMiddleware.OptionalAuth()
	canUpdate := config.PermissionMiddleware.RequirePermission(record.KindPoisonReport, record.ActionUpdate)
	owner := attachment.PoisonReportOwner.Name

	reports := api.Group("/poison-reports")
	{
		reports.POST("", requireAuth, config.PoisonReportHandler.SaveReport)
		reports.GET("", optionalAuth, config.PoisonReportHandler.SearchReports)

		reports.GET("/:id/contacts", optionalAuth, config.PoisonReportHandler.ListContacts)
		reports.POST("/:id/contacts", requireAuth, config.PoisonReportHandler.CreateContact)
		reports.POST("/:id/contacts/bulk", requireAuth, config.PoisonReportHandler.BulkCreateContacts)

		reports.GET("/:id/meals", optionalAuth, config.PoisonReportHandler.ListMeals)
		reports.POST("/:id/meals", requireAuth, config.PoisonReportHandler.CreateMeal)

		reports.POST("/:id/attachments", requireAuth, canUpdate, config.AttachmentHandler.Upload(owner))
		reports.POST("/:id/attachments/promote", requireAuth, canUpdate, config.AttachmentHandler.Promote(owner))
		reports.DELETE("/:id/attachments/:filename", requireAuth, canUpdate, config.AttachmentHandler.Detach(owner))

		reports.GET("/:id", optionalAuth, config.PoisonReportHandler.GetReport)
		reports.PUT("/:id", requireAuth, config.PoisonReportHandler.UpdateReport)
		reports.DELETE("/:id", requireAuth, config.PoisonReportHandler.DeleteReport)
	}

	contacts := api.Group("/contacts")
	contacts.Use(requireAuth)
	{
		contacts.PUT("/:id", config.PoisonReportHandler.UpdateContact)
		contacts.DELETE("/:id", config.PoisonReportHandler.DeleteContact)
	}

	meals := api.Group("/meals")
	meals.Use(requireAuth)
	{
		meals.PUT("/:id", config.PoisonReportHandler.UpdateMeal)
		meals.DELETE("/:id", config.PoisonReportHandler.DeleteMeal)
	}
}
