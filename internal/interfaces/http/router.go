package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/huddle-inc/huddle/internal/application/entitlement"
	"github.com/huddle-inc/huddle/internal/application/notification"
	"github.com/huddle-inc/huddle/internal/infrastructure/cache"
	"github.com/huddle-inc/huddle/internal/infrastructure/config"
	"github.com/huddle-inc/huddle/internal/infrastructure/push"
	"github.com/huddle-inc/huddle/internal/infrastructure/repository"
	"github.com/huddle-inc/huddle/internal/interfaces/http/handlers"
	"github.com/huddle-inc/huddle/internal/interfaces/http/middleware"
	"github.com/huddle-inc/huddle/internal/shared/logger"
	"github.com/huddle-inc/huddle/internal/shared/services/markdown"
)

// Router wires repositories, services, and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// Dependencies carries the process-level resources the router builds on.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Interface
}

func NewRouter(deps Dependencies) (*Router, error) {
	cfg := deps.Config
	log := deps.Logger

	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	// Repositories
	inboxRepo := repository.NewInboxRepository(deps.DB)
	prefRepo := repository.NewPreferenceRepository(deps.DB)
	deliveryRepo := repository.NewDeliveryLogRepository(deps.DB)
	subscriptionRepo := repository.NewSubscriptionRepository(deps.DB)

	// Collaborators
	activityTracker := cache.NewRedisActivityTracker(deps.Redis)
	pushProvider, err := push.NewProvider(&cfg.Push, log)
	if err != nil {
		return nil, err
	}
	markdownService := markdown.NewService()

	// Application services
	notificationService := notification.NewService(
		inboxRepo, prefRepo, deliveryRepo,
		activityTracker, pushProvider,
		cfg.Notification.BatchWindow(),
		markdownService, log,
	)
	entitlementService := entitlement.NewService(
		subscriptionRepo, cfg.Entitlement.GracePeriod(), log,
	)

	// Handlers
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)
	entitlementHandler := handlers.NewEntitlementHandler(entitlementService, log)
	internalHandler := handlers.NewInternalNotifyHandler(notificationService, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.Use(middleware.Identity())
	api.Use(middleware.Heartbeat(activityTracker, log))
	{
		api.GET("/notifications", notificationHandler.ListNotifications)
		api.GET("/notifications/unread-count", notificationHandler.GetUnreadCount)
		api.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		api.PUT("/notifications/:sid/read", notificationHandler.MarkAsRead)
		api.POST("/notifications/:sid/archive", notificationHandler.Archive)

		api.GET("/preferences", notificationHandler.GetPreferences)
		api.PUT("/preferences", notificationHandler.UpdatePreferences)

		api.POST("/activity/heartbeat", notificationHandler.Heartbeat)

		api.GET("/entitlements", entitlementHandler.GetEntitlements)
		api.GET("/entitlements/features/:feature", entitlementHandler.CheckFeature)
	}

	// Service-to-service surface. Only the other Huddle services call
	// notify; recipients never do.
	if cfg.Server.InternalToken != "" {
		internal := engine.Group("/internal")
		internal.Use(middleware.InternalAuth(cfg.Server.InternalToken))
		{
			internal.POST("/notifications", internalHandler.Notify)
			internal.POST("/notifications/batch", internalHandler.NotifyMany)
		}
	} else {
		log.Warnw("internal token not configured, notify endpoints disabled")
	}

	return &Router{engine: engine}, nil
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
