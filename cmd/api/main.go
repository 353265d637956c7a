package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "control-center-analytics/internal/analytics/adapters/http/fiber"
	"control-center-analytics/internal/analytics/adapters/metricsapi"
	analyticsUsecase "control-center-analytics/internal/analytics/core/usecase"
	"control-center-analytics/internal/config"

	sessionHttp "control-center-analytics/internal/session/adapters/http/fiber"
	sessionRepoPg "control-center-analytics/internal/session/adapters/postgres"
	sessionUsecase "control-center-analytics/internal/session/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "control-center-analytics/docs"
)

// @title Control Center Analytics API
// @version 1.0
// @description Dimensional time-series aggregation and segmentation service
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// DB connection (session/context store)
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Metrics backend client
	reader, err := metricsapi.NewClient(cfg.MetricsAPIURL, &http.Client{Timeout: 30 * time.Second}, cfg.CacheSize, log)
	if err != nil {
		log.Fatalf("failed to build metrics client: %v", err)
	}

	// Repositories
	contextRepository := sessionRepoPg.NewContextRepository(sessionRepoPg.NewSQLDB(db))

	// Usecases
	buildGridUC := analyticsUsecase.NewBuildGridUseCase(reader)
	getKPIsUC := analyticsUsecase.NewGetKPIsUseCase(reader)
	compareUC := analyticsUsecase.NewComparePeriodsUseCase(reader)
	contextUC := sessionUsecase.NewContextUseCase(contextRepository)

	// Active context loads once at startup; handlers switch it explicitly.
	if active, err := contextUC.GetActive(context.Background()); err != nil {
		log.WithError(err).Warn("could not load active dashboard context")
	} else if active != nil {
		log.WithFields(logrus.Fields{"context": active.Name, "merchant": active.MerchantID}).
			Info("active dashboard context loaded")
	}

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	analyticsHandler := analyticsHttp.NewAnalyticsHandler(buildGridUC, getKPIsUC, compareUC)
	app.Post("/v1/charts/grid", analyticsHandler.BuildGrid)
	app.Post("/v1/charts/axis", analyticsHandler.AxisPreview)
	app.Get("/v1/kpis", analyticsHandler.GetKPIs)
	app.Post("/v1/compare", analyticsHandler.ComparePeriods)

	contextHandler := sessionHttp.NewContextHandler(contextUC)
	app.Post("/v1/contexts", contextHandler.SaveContext)
	app.Get("/v1/contexts/active", contextHandler.GetActiveContext)
	app.Put("/v1/contexts/:id/activate", contextHandler.ActivateContext)
	app.Delete("/v1/contexts", contextHandler.ClearContexts)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Errorf("fiber stopped: %v", err)
		}
	}()

	log.Infof("server started on %s", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("fiber shutdown error: %v", err)
	}

	log.Info("server exiting")
}
