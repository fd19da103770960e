package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	catalogueHandler *handler.CatalogueHandler
	sessionHandler   *handler.SessionHandler
	photoHandler     *handler.PhotoHandler
	stickerHandler   *handler.StickerHandler
	exportHandler    *handler.ExportHandler
	cameraHandler    *handler.CameraHandler
	sessionAuth      *middleware.SessionAuth
	requestLimiter   *middleware.RateLimiter
	exportLimiter    *middleware.RateLimiter
	allowedOrigins   []string
	healthChecks     map[string]HealthCheck
	logger           *zap.Logger
}

// HealthCheck reports whether a backing service answers.
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

type RouterConfig struct {
	CatalogueHandler *handler.CatalogueHandler
	SessionHandler   *handler.SessionHandler
	PhotoHandler     *handler.PhotoHandler
	StickerHandler   *handler.StickerHandler
	ExportHandler    *handler.ExportHandler
	CameraHandler    *handler.CameraHandler
	SessionAuth      *middleware.SessionAuth
	// Limiters are optional; a nil limiter disables rate limiting.
	RequestLimiter *middleware.RateLimiter
	ExportLimiter  *middleware.RateLimiter
	AllowedOrigins []string
	HealthChecks   map[string]HealthCheck
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		catalogueHandler: cfg.CatalogueHandler,
		sessionHandler:   cfg.SessionHandler,
		photoHandler:     cfg.PhotoHandler,
		stickerHandler:   cfg.StickerHandler,
		exportHandler:    cfg.ExportHandler,
		cameraHandler:    cfg.CameraHandler,
		sessionAuth:      cfg.SessionAuth,
		requestLimiter:   cfg.RequestLimiter,
		exportLimiter:    cfg.ExportLimiter,
		allowedOrigins:   cfg.AllowedOrigins,
		healthChecks:     cfg.HealthChecks,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.health)

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	if r.requestLimiter != nil {
		api.Use(r.requestLimiter.Limit())
	}
	{
		api.GET("/layouts", r.catalogueHandler.Layouts)
		api.GET("/stickers", r.catalogueHandler.Stickers)
		api.GET("/backgrounds", r.catalogueHandler.Backgrounds)
		api.GET("/filters", r.catalogueHandler.Filters)

		api.POST("/sessions", r.sessionHandler.Create)

		sessions := api.Group("/sessions/:id")
		sessions.Use(r.sessionAuth.RequireSession())
		{
			sessions.GET("", r.sessionHandler.Get)
			sessions.GET("/geometry", r.sessionHandler.Geometry)
			sessions.PUT("/style", r.sessionHandler.UpdateStyle)
			sessions.POST("/background", r.sessionHandler.UploadBackground)
			sessions.POST("/reset", r.sessionHandler.Reset)

			sessions.POST("/photos", r.photoHandler.Upload)
			sessions.PATCH("/photos/:photo_id", r.photoHandler.Update)
			sessions.DELETE("/photos/:photo_id", r.photoHandler.Delete)

			sessions.POST("/stickers", r.stickerHandler.Add)
			sessions.PATCH("/stickers/:sticker_id", r.stickerHandler.Update)
			sessions.DELETE("/stickers/:sticker_id", r.stickerHandler.Delete)

			sessions.GET("/camera", r.cameraHandler.Stream)

			sessions.GET("/preview", r.exportHandler.Preview)
			sessions.GET("/exports", r.exportHandler.List)
			sessions.GET("/exports/:export_id", r.exportHandler.Get)
		}

		exports := sessions.Group("/export")
		if r.exportLimiter != nil {
			exports.Use(r.exportLimiter.LimitSession())
		}
		{
			exports.POST("", r.exportHandler.Export)
			exports.GET("/download", r.exportHandler.Download)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// health runs every check and answers 503 when any of them fails.
func (r *Router) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(gin.H, len(r.healthChecks))
	for name, check := range r.healthChecks {
		if err := check(ctx); err != nil {
			r.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			checks[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "up"
	}

	body := gin.H{"status": "ok", "checks": checks}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
