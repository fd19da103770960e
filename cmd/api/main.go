package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository/redis"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/render"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/catalogue"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/export"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/session"
	"github.com/marcos-nsantos/photostrip-backend/migrations"
)

const (
	assetFetchTimeout    = 15 * time.Second
	sessionSweepInterval = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, migrations.FS); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	var redisClient *goredis.Client
	if cfg.Session.Store == config.SessionStoreRedis || cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	// Repositories
	var sessionRepo repository.SessionRepository
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		sessionRepo = redis.NewSessionRepo(redisClient, cfg.Session.TTL)
	case config.SessionStoreMemory:
		memoryRepo := memory.NewSessionRepo(cfg.Session.TTL)
		go memoryRepo.RunSweeper(ctx, sessionSweepInterval)
		sessionRepo = memoryRepo
	default:
		logger.Fatal("unknown session store", zap.String("store", cfg.Session.Store))
	}
	layoutRepo := postgres.NewLayoutRepo(pool)
	stickerRepo := postgres.NewStickerRepo(pool)
	backgroundRepo := postgres.NewBackgroundRepo(pool)
	exportRepo := postgres.NewExportRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.SessionTokenTTL)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	if cfg.S3.CreateBucket {
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			logger.Fatal("failed to create s3 bucket", zap.Error(err))
		}
	}
	imageProcessor := storage.NewImageProcessor()

	loader := render.NewAssetLoader(s3Storage, os.DirFS(cfg.Render.AssetDir), render.NewPublicClient(assetFetchTimeout))
	compositor, err := render.NewCompositor(loader, cfg.Render.BaseWidth)
	if err != nil {
		logger.Fatal("failed to create compositor", zap.Error(err))
	}

	// Use cases
	catalogueSvc := catalogue.NewService(layoutRepo, stickerRepo, backgroundRepo, logger)
	sessionSvc := session.NewService(sessionRepo, catalogueSvc, s3Storage, imageProcessor, jwtSvc, cfg.Render.PreviewWidth, logger)
	exportSvc := export.NewService(sessionRepo, exportRepo, s3Storage, compositor, cfg.Render.ExportSlug, cfg.S3.SignedURLTTL, logger)

	// Handlers
	catalogueHandler := handler.NewCatalogueHandler(catalogueSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc, cfg.Server.MaxUploadSize)
	photoHandler := handler.NewPhotoHandler(sessionSvc, cfg.Server.MaxUploadSize)
	stickerHandler := handler.NewStickerHandler(sessionSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	cameraHandler := handler.NewCameraHandler(sessionSvc, sessionSvc, handler.CameraConfig{
		Capture: capture.Config{
			JPEGQuality:  cfg.Capture.JPEGQuality,
			Countdowns:   cfg.Capture.Countdowns,
			TickInterval: cfg.Capture.TickInterval,
		},
		OpenTimeout:    cfg.Capture.OpenTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, logger)

	// Middleware
	sessionAuth := middleware.NewSessionAuth(jwtSvc)

	var requestLimiter, exportLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		requestLimiter = middleware.NewRateLimiter(redisClient, "requests", cfg.RateLimit.RequestsPerMin)
		exportLimiter = middleware.NewRateLimiter(redisClient, "exports", cfg.RateLimit.ExportsPerMin)
	}

	healthChecks := map[string]server.HealthCheck{"postgres": pool.Ping}
	if redisClient != nil {
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		CatalogueHandler: catalogueHandler,
		SessionHandler:   sessionHandler,
		PhotoHandler:     photoHandler,
		StickerHandler:   stickerHandler,
		ExportHandler:    exportHandler,
		CameraHandler:    cameraHandler,
		SessionAuth:      sessionAuth,
		RequestLimiter:   requestLimiter,
		ExportLimiter:    exportLimiter,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		HealthChecks:     healthChecks,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	logger.Info("server stopped")
}
