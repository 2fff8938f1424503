package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/attachment"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/middleware"
)

type UploadRouteConfig struct {
	AttachmentHandler *attachmenthandlers.Handler
	AuthMiddleware    *middleware.AuthMiddleware
	UploadRateLimiter *middleware.RateLimiter
}

func SetupUploadRoutes(api *gin.RouterGroup, config *UploadRouteConfig) {
	staged := api.Group("/uploads/staged")
	staged.Use(config.AuthMiddleware.RequireAuth())
	{
		staged.POST("", config.UploadRateLimiter.Limit(), config.AttachmentHandler.StageUpload)
		staged.DELETE("/:filename", config.AttachmentHandler.DiscardStaged)
	}

	api.GET("/attachments/:owner/:id/:filename",
		config.AuthMiddleware.OptionalAuth(),
		config.AttachmentHandler.Download)
}
