package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shjfcs/foodwatch/internal/application/upload"
	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/infrastructure/auth"
	"github.com/shjfcs/foodwatch/internal/infrastructure/config"
	"github.com/shjfcs/foodwatch/internal/infrastructure/metrics"
	"github.com/shjfcs/foodwatch/internal/infrastructure/permission"
	"github.com/shjfcs/foodwatch/internal/infrastructure/ratelimit"
	"github.com/shjfcs/foodwatch/internal/infrastructure/scheduler"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/middleware"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

const uploadRateScope = "uploads"

// Container holds the infrastructure components, repositories, services,
// handlers and background jobs, wires them together and shuts them down.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	store   attachment.FileStore
	metrics *metrics.Metrics

	enforcer *permission.Enforcer
	jwtSvc   *auth.JWTService

	repos *repositories
	svcs  *services
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	uploadRateLimiter    *middleware.RateLimiter

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires the application. redisClient may be nil, in which case
// upload rate limits are kept per process.
func NewContainer(db *gorm.DB, cfg *config.Config, store attachment.FileStore, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		redis:   redisClient,
		store:   store,
		metrics: metrics.New(),
	}

	// Section 1: Infrastructure - policy enforcer, tokens, limiter
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories and application services
	c.initRepositories()
	c.initServices()

	// Section 3: Handlers
	if err := c.initHandlers(); err != nil {
		return nil, err
	}

	// Section 4: Background jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return err
	}
	if c.cfg.Casbin.SeedPolicies {
		if err := enforcer.SeedDefaults(); err != nil {
			return err
		}
	}
	c.enforcer = enforcer

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.log.Warnw("redis not configured, upload rate limits are per process")
		limiter = ratelimit.NewMemoryRateLimiter()
	}
	c.uploadRateLimiter = middleware.NewRateLimiter(limiter, uploadRateScope, c.cfg.Attachments.UploadRatePerMinute, c.log)
	return nil
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return err
	}
	if err := manager.RegisterStagedUploadReaper(upload.NewReapJob(c.svcs.stager), c.cfg.Attachments.ReapInterval); err != nil {
		return err
	}
	c.schedulerManager = manager
	return nil
}

// StartBackground starts the scheduled jobs.
func (c *Container) StartBackground() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs and closes the Redis client.
func (c *Container) Shutdown(ctx context.Context) {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}
