package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalystvc/lead-capture-service/docs"
	"github.com/katalystvc/lead-capture-service/internal/config"
	"github.com/katalystvc/lead-capture-service/internal/handler"
	"github.com/katalystvc/lead-capture-service/internal/logger"
	"github.com/katalystvc/lead-capture-service/internal/mailer"
	"github.com/katalystvc/lead-capture-service/internal/repository"
	"github.com/katalystvc/lead-capture-service/internal/repository/excel"
	"github.com/katalystvc/lead-capture-service/internal/repository/sqlite"
	"github.com/katalystvc/lead-capture-service/internal/service"
)

// @title KatalystVC Lead Capture API
// @version 1.0
// @description API for capturing website lead form submissions
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting lead capture service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort),
		zap.String("store_backend", cfg.StoreBackend))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.ServiceHost

	ctx := context.Background()

	// Select the store backend
	var repo repository.LeadRepository
	var storeFile string
	switch cfg.StoreBackend {
	case config.BackendExcel:
		storeFile = cfg.ExcelPath
		repo = excel.NewRepository(cfg.ExcelPath, log)
	default:
		storeFile = cfg.SQLitePath
		repo, err = sqlite.NewRepository(cfg.SQLitePath, log)
		if err != nil {
			log.Fatal("Failed to open sqlite repository", zap.Error(err))
		}
	}
	defer func(repo repository.LeadRepository) {
		if err := repo.Close(); err != nil {
			log.Error("Failed to close repository", zap.Error(err))
		}
	}(repo)

	if err := repo.Init(ctx); err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}

	// Only configure the mailer when credentials are present; otherwise
	// the service skips notification emails entirely.
	var m mailer.Mailer
	if cfg.MailConfigured() {
		m = mailer.New(cfg, log)
	} else {
		log.Info("Email credentials not configured, notifications disabled")
	}

	leadService := service.NewLeadService(repo, m, storeFile, log)

	h := handler.NewHandler(leadService, log)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
