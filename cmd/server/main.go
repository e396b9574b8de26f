package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/banquetpro/banquetpro-api/internal/config"
	"github.com/banquetpro/banquetpro-api/internal/database"
	"github.com/banquetpro/banquetpro-api/internal/handler"
	"github.com/banquetpro/banquetpro-api/internal/logger"
	"github.com/banquetpro/banquetpro-api/internal/middleware"
	"github.com/banquetpro/banquetpro-api/internal/queue"
	"github.com/banquetpro/banquetpro-api/internal/repository"
	"github.com/banquetpro/banquetpro-api/internal/router"
	"github.com/banquetpro/banquetpro-api/internal/service"
)

func main() {
	// .env is optional; production environments set real env vars.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env)
	log := logger.Get()
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	defer db.Close()

	eventRepo := repository.NewEventRepo(db)
	clientRepo := repository.NewClientRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	assignmentRepo := repository.NewAssignmentRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)

	guard := service.NewScheduleGuard(eventRepo)
	analytics := service.NewAnalytics(eventRepo)

	h := handler.New(eventRepo, clientRepo, staffRepo, assignmentRepo, inventoryRepo, supplierRepo, guard, analytics)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID)
	e.Use(middleware.RequestLogger)
	e.Use(middleware.Metrics)
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, h)

	// Consume status-change notifications in the background; the consumer
	// reconnects on broker failures.
	go queue.StartStatusConsumer()

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
