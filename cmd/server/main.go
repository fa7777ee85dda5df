package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mgrady4/civica/internal/auth"
	"github.com/mgrady4/civica/internal/config"
	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/handlers"
	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/metrics"
	"github.com/mgrady4/civica/internal/middleware"
	"github.com/mgrady4/civica/internal/repository"
	"github.com/mgrady4/civica/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Civica API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"driver":      cfg.Database.Driver,
	})

	// Open the store and bootstrap the schema
	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	db, err := database.Open(startCtx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", err, map[string]interface{}{
			"driver": cfg.Database.Driver,
		})
	}
	defer db.Close()

	// Initialize repository layer
	legislatorRepo := repository.NewLegislatorRepository(db)
	billRepo := repository.NewBillRepository(db)
	spendingRepo := repository.NewSpendingRepository(db)
	lobbyingRepo := repository.NewLobbyingRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize service layer
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	legislatorService := services.NewLegislatorService(legislatorRepo, log)
	billService := services.NewBillService(billRepo, log)
	spendingService := services.NewSpendingService(spendingRepo, log)
	lobbyingService := services.NewLobbyingService(lobbyingRepo, log)
	summaryService := services.NewSummaryService(legislatorRepo, billRepo, spendingRepo, log)
	seedService := services.NewSeedService(legislatorRepo, billRepo, spendingRepo, lobbyingRepo, log)
	authService := services.NewAuthService(userRepo, tokenIssuer, log)

	// One-shot bulk load at startup
	if cfg.Server.SeedOnStart {
		counts, err := seedService.Reseed(startCtx, services.SourceAll)
		if err != nil {
			log.Fatal("Failed to seed store", err, nil)
		}
		log.Info("Store seeded", map[string]interface{}{"counts": counts})
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	m := metrics.New()

	// Middleware in order: RequestID -> Logger -> Recovery -> CORS ->
	// Sanitize -> Metrics. Sanitization runs before every handler.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.Sanitize())
	router.Use(m.Middleware())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	legislatorHandler := handlers.NewLegislatorHandler(legislatorService)
	billHandler := handlers.NewBillHandler(billService)
	spendingHandler := handlers.NewSpendingHandler(spendingService)
	lobbyingHandler := handlers.NewLobbyingHandler(lobbyingService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	adminHandler := handlers.NewAdminHandler(seedService)
	authHandler := handlers.NewAuthHandler(authService)

	// Register routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/metrics", m.Handler())

	router.GET("/legislators", legislatorHandler.Search)
	router.GET("/bills", billHandler.Search)
	router.GET("/spending", spendingHandler.Search)
	router.GET("/lobbying", lobbyingHandler.Search)
	router.GET("/summary", summaryHandler.Summary)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(tokenIssuer))
	{
		admin.POST("/reseed", adminHandler.Reseed)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
