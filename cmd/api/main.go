package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medilabs/dcreport-api/internal/application/service"
	"github.com/medilabs/dcreport-api/internal/config"
	"github.com/medilabs/dcreport-api/internal/infrastructure/dataset"
	"github.com/medilabs/dcreport-api/internal/infrastructure/repository"
	"github.com/medilabs/dcreport-api/internal/presentation/http/handler"
	"github.com/medilabs/dcreport-api/internal/presentation/http/routes"
	"github.com/medilabs/dcreport-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.App.Name)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize repositories
	caseRepo := repository.NewMemoryCaseRepository()
	idempotencyRepo := repository.NewMemoryIdempotencyRepository()

	// Initialize services
	parserService := service.NewParserService(cfg.Billing.DCRate)
	caseService := service.NewCaseService(caseRepo, parserService, zlog)
	reportService := service.NewReportService()
	exportService := service.NewExportService(zlog)

	// Seed the in-memory collection from the dataset. The collection lives
	// for the lifetime of the process; a restart returns to this state.
	raw, err := dataset.Raw(cfg.Dataset.Path)
	if err != nil {
		zlog.Fatal("Failed to load dataset", zap.Error(err))
	}
	if _, err := caseService.Seed(context.Background(), raw); err != nil {
		zlog.Fatal("Failed to seed case records", zap.Error(err))
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Case:       handler.NewCaseHandler(caseService),
		Report:     handler.NewReportHandler(caseService, reportService),
		Dashboard:  handler.NewDashboardHandler(caseService, reportService),
		Export:     handler.NewExportHandler(caseService, exportService),
		Suggestion: handler.NewSuggestionHandler(&cfg.Suggestions),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          zlog,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
