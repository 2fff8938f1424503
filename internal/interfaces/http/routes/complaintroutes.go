package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	attachmenthandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/attachment"
	complainthandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/complaint"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/middleware"
)

type ComplaintRouteConfig struct {
	ComplaintHandler     *complainthandlers.Handler
	AttachmentHandler    *attachmenthandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupComplaintRoutes(api *gin.RouterGroup, config *ComplaintRouteConfig) {
	requireAuth := config.AuthMiddleware.RequireAuth()
	optionalAuth := config.AuthMiddleware.OptionalAuth()
	owner := attachment.ComplaintOwner.Name

	api.GET("/lookups/complaints", config.ComplaintHandler.Lookups)

	complaints := api.Group("/complaints")
	{
		complaints.POST("", requireAuth, config.ComplaintHandler.CreateComplaint)
		complaints.GET("", optionalAuth, config.ComplaintHandler.ListComplaints)

		// Nested collections and attachments come before the bare /:id routes
		complaints.GET("/:id/products", optionalAuth, config.ComplaintHandler.ListProducts)
		complaints.POST("/:id/products", requireAuth, config.ComplaintHandler.CreateProduct)
		complaints.POST("/:id/products/bulk", requireAuth, config.ComplaintHandler.BulkCreateProducts)

		complaints.POST("/:id/attachment",
			requireAuth,
			config.PermissionMiddleware.RequirePermission(record.KindComplaint, record.ActionUpdate),
			config.AttachmentHandler.Upload(owner))
		complaints.DELETE("/:id/attachment/:filename",
			requireAuth,
			config.PermissionMiddleware.RequirePermission(record.KindComplaint, record.ActionUpdate),
			config.AttachmentHandler.Detach(owner))

		complaints.GET("/:id", optionalAuth, config.ComplaintHandler.GetComplaint)
		complaints.PUT("/:id", requireAuth, config.ComplaintHandler.UpdateComplaint)
		complaints.DELETE("/:id", requireAuth, config.ComplaintHandler.DeleteComplaint)
	}

	products := api.Group("/products")
	products.Use(requireAuth)
	{
		products.PUT("/:id", config.ComplaintHandler.UpdateProduct)
		products.DELETE("/:id", config.ComplaintHandler.DeleteProduct)
	}
}
