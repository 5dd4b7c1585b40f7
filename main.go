package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/config"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/db"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/logger"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/routes"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/seed"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownGrace = 10 * time.Second

func main() {

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	// Database connection
	database, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Error connecting to database: %v", err)
	}

	// Auto-migrate models
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("Error during auto-migration: %v", err)
	}
	if cfg.SeedDemoData {
		if err := seed.Seed(database); err != nil {
			logrus.Fatalf("Error seeding demo data: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sessions and rate limiting
	sessions := middleware.NewSessionManager(cfg.JWTSecret, cfg.TokenTTL)
	sessions.StartCleanup(ctx, time.Minute)
	authLimiter := middleware.NewClientRateLimiter(cfg.AuthRatePerMinute)
	authLimiter.StartCleanup(ctx, time.Minute, 10*time.Minute)

	// Gin router setup
	router := routes.NewRouter(routes.Dependencies{
		DB:             database,
		Sessions:       sessions,
		AuthLimiter:    authLimiter,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.ServerHost,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Server run
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerHost)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Error starting server on %s: %v", cfg.ServerHost, err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server did not shut down cleanly")
	}
	if err := db.Close(database, shutdownGrace); err != nil {
		logrus.WithError(err).Error("Error closing database")
	}
	logrus.Info("Server stopped")
}
