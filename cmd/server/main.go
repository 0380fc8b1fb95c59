package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/RupeshP0713/roomrent-backend/internal/api/http"
	"github.com/RupeshP0713/roomrent-backend/internal/config"
	"github.com/RupeshP0713/roomrent-backend/internal/jobs"
	"github.com/RupeshP0713/roomrent-backend/internal/logger"
	"github.com/RupeshP0713/roomrent-backend/internal/repository/postgres"
	"github.com/RupeshP0713/roomrent-backend/internal/scheduler"
	"github.com/RupeshP0713/roomrent-backend/internal/security"
	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Roomrent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.UserTokenExpiry, cfg.JWT.AdminTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.OwnerRepository, store.TenantRepository, tokenManager, cfg.Admin)
	ownerSvc := service.NewOwnerService(store.OwnerRepository, store.TenantRepository)
	requestSvc := service.NewRequestService(store.RentRequestRepository, store.OwnerRepository, store.TenantRepository, cfg.RateLimit)
	tenantSvc := service.NewTenantService(store.TenantRepository, store.OwnerRepository, requestSvc)
	adminSvc := service.NewAdminService(store.OwnerRepository, store.TenantRepository, store.RentRequestRepository)
	messageSvc := service.NewMessageService(store.MessageRepository, cfg.Admin.ID)
	searchSvc := service.NewSearchService(store.OwnerRepository, store.TenantRepository)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:    authSvc,
		Owner:   ownerSvc,
		Tenant:  tenantSvc,
		Request: requestSvc,
		Admin:   adminSvc,
		Message: messageSvc,
		Search:  searchSvc,
	}, tokenManager, cfg.Admin.ID)

	// Start the expiry sweep scheduler alongside the server
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Request: requestSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
