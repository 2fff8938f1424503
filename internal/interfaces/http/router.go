package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/interfaces/http/middleware"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/routes"
)

// Router owns the gin engine and the wired container.
type Router struct {
	*Container
}

func NewRouter(container *Container) *Router {
	return &Router{Container: container}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Metrics(r.metrics))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	api := r.engine.Group("/api")

	routes.SetupComplaintRoutes(api, &routes.ComplaintRouteConfig{
		ComplaintHandler:     r.hdlrs.complaintHandler,
		AttachmentHandler:    r.hdlrs.attachmentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupPoisonReportRoutes(api, &routes.PoisonReportRouteConfig{
		PoisonReportHandler:  r.hdlrs.poisonReportHandler,
		AttachmentHandler:    r.hdlrs.attachmentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupUploadRoutes(api, &routes.UploadRouteConfig{
		AttachmentHandler: r.hdlrs.attachmentHandler,
		AuthMiddleware:    r.authMiddleware,
		UploadRateLimiter: r.uploadRateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
