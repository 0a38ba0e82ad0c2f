package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	marketHTTP "github.com/enaszrekat/reuse-market-app/internal/controller/http"
	"github.com/enaszrekat/reuse-market-app/internal/repo/persistent"
	"github.com/enaszrekat/reuse-market-app/internal/usecase"
	"github.com/enaszrekat/reuse-market-app/pkg/config"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
	"github.com/enaszrekat/reuse-market-app/pkg/middleware"
	"github.com/enaszrekat/reuse-market-app/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/enaszrekat/reuse-market-app/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, queueClient *queue.Client) {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	productRepo := persistent.NewProductRepository(db)
	messageRepo := persistent.NewMessageRepository(db)
	adminRepo := persistent.NewAdminRepository(db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, log)
	productUseCase := usecase.NewProductUseCase(productRepo, log)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, queueClient, log)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, userRepo, cfg.FeatureMessages, cfg.FeatureNotifications, log)

	// Initialize HTTP handlers
	userHandler := marketHTTP.NewUserHandler(userUseCase, log)
	productHandler := marketHTTP.NewProductHandler(productUseCase, log)
	messageHandler := marketHTTP.NewMessageHandler(messageUseCase, log)
	adminHandler := marketHTTP.NewAdminHandler(adminUseCase, log)

	// Setup router
	r := gin.Default()

	// The mobile clients are served from arbitrary origins
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/products", productHandler.ListProducts)
		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/users/:id/products", productHandler.ListUserProducts)
		api.POST("/messages", messageHandler.SendMessage)
		api.GET("/admin/stats", adminHandler.GetStats)
		api.GET("/admin/activity", adminHandler.GetRecentActivity)
		api.POST("/admin/users/:id/block", adminHandler.BlockUser)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Marketplace API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down marketplace API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Marketplace API exited")
}
