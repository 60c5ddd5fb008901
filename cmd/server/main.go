// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/config"
	"github.com/arifrahmanandika/kangserpis/internal/database"
	"github.com/arifrahmanandika/kangserpis/internal/handler"
	"github.com/arifrahmanandika/kangserpis/internal/protocol"
	"github.com/arifrahmanandika/kangserpis/internal/repository"
	"github.com/arifrahmanandika/kangserpis/internal/routes"
	"github.com/arifrahmanandika/kangserpis/internal/service"
	"github.com/arifrahmanandika/kangserpis/internal/utils"
)

// Application represents the main application
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	database *database.DB

	// Services
	printService  *service.PrintService
	reportService *service.ReportService

	// Repositories
	settingsRepo repository.SettingsRepository
	txRepo       repository.TransactionRepository

	// Printer transport
	transportFactory protocol.TransportFactory

	// WebSocket notifications
	notificationHandler *handler.NotificationHandler
}

func main() {
	// Initialize application
	app, err := NewApplication()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Start the application
	if err := app.Start(); err != nil {
		app.logger.Fatal("Failed to start application", zap.Error(err))
	}
}

// NewApplication creates a new application instance
func NewApplication() (*Application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Create service logger
	serviceLogger := utils.NewServiceLogger(logger, "print-service")
	serviceLogger.LogServiceStart(cfg.App.Version, cfg)

	app := &Application{
		config: cfg,
		logger: logger,
	}

	// Initialize components
	if err := app.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.initializeRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := app.initializeTransport(); err != nil {
		return nil, fmt.Errorf("failed to initialize printer transport: %w", err)
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.initializeServer(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return app, nil
}

// initializeDatabase sets up the read-only connection to the ledger store
func (app *Application) initializeDatabase() error {
	db, err := database.NewConnection(&app.config.Database, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}

	app.database = db
	app.logger.Info("Database initialized successfully")
	return nil
}

// initializeRepositories creates repository instances
func (app *Application) initializeRepositories() error {
	app.settingsRepo = repository.NewSettingsRepository(app.database, app.logger)
	app.txRepo = repository.NewTransactionRepository(app.database, app.logger)

	app.logger.Info("Repositories initialized successfully")
	return nil
}

// initializeTransport sets up the Bluetooth printer transport factory
func (app *Application) initializeTransport() error {
	bleConfig := &protocol.BLEConfig{
		ScanTimeout:    app.config.Bluetooth.ScanTimeout,
		ConnectTimeout: app.config.Bluetooth.ConnectTimeout,
		PrinterAddress: app.config.Bluetooth.PrinterAddress,
		PrinterName:    app.config.Bluetooth.PrinterName,
	}

	app.transportFactory = protocol.NewBLEFactory(bleConfig, app.logger)

	app.logger.Info("Printer transport initialized",
		zap.Duration("scan_timeout", bleConfig.ScanTimeout),
		zap.Duration("connect_timeout", bleConfig.ConnectTimeout),
		zap.String("printer_address", bleConfig.PrinterAddress),
	)
	return nil
}

// initializeServices creates service instances
func (app *Application) initializeServices() error {
	// WebSocket notification sink
	app.notificationHandler = handler.NewNotificationHandler(app.logger)

	// Create report service
	app.reportService = service.NewReportService(app.txRepo, app.logger)

	// Create print service
	app.printService = service.NewPrintService(
		app.settingsRepo,
		app.txRepo,
		app.reportService,
		app.transportFactory,
		app.notificationHandler,
		app.logger,
	)

	app.logger.Info("Services initialized successfully")
	return nil
}

// initializeServer sets up HTTP server and routes
func (app *Application) initializeServer() error {
	// Create router
	routerManager := routes.NewRouter(
		app.config,
		app.logger,
		app.database,
		app.printService,
		app.reportService,
		app.notificationHandler,
	)

	// Setup router with all routes
	router := routerManager.SetupRouter()

	// Create HTTP server
	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("HTTP server initialized",
		zap.String("address", app.config.GetServerAddr()),
	)

	return nil
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	app.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	app.shutdown()
}

// shutdown performs graceful shutdown
func (app *Application) shutdown() {
	serviceLogger := utils.NewServiceLogger(app.logger, "print-service")
	serviceLogger.LogServiceStop("shutdown signal received")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("HTTP server stopped")
	}

	// Close database connection
	if app.database != nil {
		if err := app.database.Close(); err != nil {
			app.logger.Error("Database close error", zap.Error(err))
		} else {
			app.logger.Info("Database connection closed")
		}
	}

	// Flush logger
	if err := utils.CloseLogger(app.logger); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}
}

func (app *Application) Start() error {
	// Start server in goroutine
	go func() {
		app.logger.Info("Starting HTTP server",
			zap.String("address", app.server.Addr),
		)

		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()

	return nil
}
