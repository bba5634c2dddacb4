package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"duitku/internal/config"
	"duitku/internal/handlers"
	"duitku/internal/logger"
	"duitku/internal/metrics"
	"duitku/internal/middleware"
	"duitku/internal/services"
	"duitku/internal/storage"
	"duitku/internal/validator"

	_ "duitku/internal/docs" // Import swagger docs
)

// @title           Duitku API
// @version         1.0
// @description     Duitku is a personal finance tracker with bank, cash, and savings balances, a daily cash budget, and savings goals.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validators with the binding engine
	validator.Register()

	// Open the persistence backend selected by STORAGE_DRIVER
	var backend storage.Store
	switch appConfig.Driver {
	case config.StorageRemote:
		backend, err = storage.NewRemote(appConfig.PostgresDSN())
	default:
		backend, err = storage.NewLocal(appConfig.SQLitePath)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", appConfig.Driver, err)
	}
	defer func() {
		if closeErr := backend.Close(); closeErr != nil {
			log.Warnf("storage close error: %v", closeErr)
		}
	}()

	// Initialize the orchestrator; this loads the persisted state once
	financeService, err := services.NewFinanceService(context.Background(), backend)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(financeService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	goalHandler := handlers.NewGoalHandler(financeService)
	settingsHandler := handlers.NewSettingsHandler(financeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check and Prometheus endpoints
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes. With no owner password configured, the middleware
	// passes everything through.
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Finance routes
	protected.GET("/balances", financeHandler.GetBalances)
	protected.GET("/budget/evaluate", financeHandler.EvaluateBudget)
	protected.GET("/statistics", financeHandler.GetStatistics)
	protected.POST("/reset", financeHandler.Reset)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/sync", goalHandler.SyncGoal)

	// Settings routes
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	log.Infof("Starting Duitku backend server on port %s (storage: %s)", appConfig.Port, appConfig.Driver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
