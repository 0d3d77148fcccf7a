package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greeshma-prabhu/marketing-tool/config"
	"github.com/greeshma-prabhu/marketing-tool/handler"
	"github.com/greeshma-prabhu/marketing-tool/middleware"
	"github.com/greeshma-prabhu/marketing-tool/pkg/logger"
	"github.com/greeshma-prabhu/marketing-tool/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	llmClient, err := service.NewLLMClient(&cfg.LLM)
	if err != nil {
		slog.Error("failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM backend ready", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	// Document storage is optional; without it onepagers are served from memory
	var storageSvc *service.StorageService
	if cfg.Storage.Endpoint != "" {
		storageSvc, err = service.NewStorageService(&cfg.Storage)
		if err != nil {
			slog.Error("failed to initialize storage service", "error", err)
			os.Exit(1)
		}
		if err := storageSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure storage bucket", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("no storage endpoint configured, documents kept in memory only")
	}

	copywriter := service.NewCopywriter(llmClient, cfg.LLM.Concurrency)
	qcEngine := service.NewQCEngine(&cfg.QC)
	variantGen := service.NewVariantGenerator(llmClient)
	catalogSvc := service.NewCatalogService(&cfg.Catalog)

	// Initialize onepager store with config
	service.InitOnepagerStore(&cfg.Store)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	onepagerHandler := handler.NewOnepagerHandler(copywriter, qcEngine, storageSvc)
	variantHandler := handler.NewVariantHandler(variantGen)
	templateHandler := handler.NewTemplateHandler()
	catalogHandler := handler.NewCatalogHandler(catalogSvc)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	rateWindow := time.Duration(cfg.Server.RateWindowSeconds) * time.Second
	router.Use(middleware.RateLimit(cfg.Server.RateLimit, rateWindow)) // Per-IP rate limiting

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.POST("/onepagers", onepagerHandler.Generate)
		protected.GET("/onepagers", onepagerHandler.List)
		protected.GET("/onepagers/:id", onepagerHandler.Get)
		protected.GET("/onepagers/:id/status", onepagerHandler.GetStatus)
		protected.GET("/onepagers/:id/document", onepagerHandler.GetDocument)
		protected.DELETE("/onepagers/:id", onepagerHandler.Delete)
		protected.POST("/variants", variantHandler.Generate)
		protected.GET("/templates", templateHandler.List)
		protected.POST("/templates/preview", templateHandler.Preview)
		protected.POST("/catalog/templates", catalogHandler.Search)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
