// internal/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/config"
	"github.com/arifrahmanandika/kangserpis/internal/database"
	"github.com/arifrahmanandika/kangserpis/internal/handler"
	"github.com/arifrahmanandika/kangserpis/internal/middleware"
	"github.com/arifrahmanandika/kangserpis/internal/service"
	"github.com/arifrahmanandika/kangserpis/internal/utils"
)

// Router holds all dependencies for routing
type Router struct {
	config              *config.Config
	logger              *zap.Logger
	db                  *database.DB
	printService        *service.PrintService
	reportService       *service.ReportService
	notificationHandler *handler.NotificationHandler
}

// NewRouter creates a new router instance
func NewRouter(
	config *config.Config,
	logger *zap.Logger,
	db *database.DB,
	printService *service.PrintService,
	reportService *service.ReportService,
	notificationHandler *handler.NotificationHandler,
) *Router {
	return &Router{
		config:              config,
		logger:              logger,
		db:                  db,
		printService:        printService,
		reportService:       reportService,
		notificationHandler: notificationHandler,
	}
}

// SetupRouter creates and configures the Gin router
func (r *Router) SetupRouter() *gin.Engine {
	// Set Gin mode
	if r.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	router := gin.New()

	// Add middleware
	r.addMiddleware(router)

	// Add routes
	r.addRoutes(router)

	return router
}

// addMiddleware adds middleware to the router
func (r *Router) addMiddleware(router *gin.Engine) {
	// Recovery middleware
	router.Use(middleware.RecoveryMiddleware(r.logger))

	// Request ID middleware
	router.Use(middleware.RequestIDMiddleware())

	// Logging middleware
	serviceLogger := utils.NewServiceLogger(r.logger, "http-server")
	router.Use(middleware.LoggingMiddleware(serviceLogger))

	// CORS middleware
	router.Use(middleware.CORSMiddleware(&r.config.Security))

	r.logger.Info("Middleware configured")
}

// addRoutes sets up all application routes
func (r *Router) addRoutes(router *gin.Engine) {
	// Create handlers
	healthHandler := handler.NewHealthHandler(r.db, r.config, r.logger)
	printHandler := handler.NewPrintHandler(r.printService, r.logger)
	reportHandler := handler.NewReportHandler(r.reportService, r.logger)

	// Health check routes
	r.addHealthRoutes(router, healthHandler)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	printHandler.RegisterRoutes(apiV1)
	reportHandler.RegisterRoutes(apiV1)

	// WebSocket routes
	ws := router.Group("/ws")
	r.notificationHandler.RegisterRoutes(ws)

	r.logger.Info("All routes configured successfully")
}

// addHealthRoutes sets up health check routes
func (r *Router) addHealthRoutes(router *gin.Engine, handler *handler.HealthHandler) {
	health := router.Group("")
	{
		health.GET("/health", handler.HealthCheck)
		health.GET("/health/db", handler.DatabaseHealthCheck)
		health.GET("/ready", handler.ReadinessCheck)
		health.GET("/live", handler.LivenessCheck)
	}
}
