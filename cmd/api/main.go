package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sundevilsync/sds-backend/internal/adapter"
	"github.com/sundevilsync/sds-backend/internal/api/middleware"
	"github.com/sundevilsync/sds-backend/internal/api/server"
	"github.com/sundevilsync/sds-backend/internal/config"
	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/ledger"
	"github.com/sundevilsync/sds-backend/internal/logger"
	"github.com/sundevilsync/sds-backend/internal/reconcile"
	"github.com/sundevilsync/sds-backend/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sun Devil Sync API")

	// Connect to database
	db, err := store.Open(cfg.Database.Path, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open database", zap.Error(err), zap.String("path", cfg.Database.Path))
	}
	dataStore := store.NewSQLiteStore(db)
	if err := dataStore.Migrate(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database", zap.String("path", cfg.Database.Path))

	// Seed catalog fixtures and the admin account
	if err := store.SeedGroupsFromFile(ctx, dataStore, cfg.Database.GroupsSeedPath); err != nil {
		logger.FatalCtx(ctx, "Failed to seed groups", zap.Error(err))
	}
	if err := store.SeedEventsFromFile(ctx, dataStore, cfg.Database.EventsSeedPath); err != nil {
		logger.FatalCtx(ctx, "Failed to seed events", zap.Error(err))
	}
	if cfg.Bootstrap.AdminPassword != "" {
		err = store.EnsureAccount(ctx, dataStore,
			cfg.Bootstrap.AdminUsername,
			cfg.Bootstrap.AdminEmail,
			cfg.Bootstrap.AdminPassword,
			domain.RoleAdmin, 0)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to bootstrap admin account", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "Admin bootstrap password not configured, skipping admin account")
	}

	// Connect the ledger gateway (live or mock, chosen once from config)
	clock := adapter.NewClock()
	gateway, err := ledger.NewGateway(ctx, cfg.Ledger, adapter.NewEthClientDialer(), clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize ledger gateway", zap.Error(err))
	}
	defer gateway.Close()
	logger.InfoCtx(ctx, "Ledger gateway ready",
		zap.String("network", gateway.NetworkLabel()),
		zap.Bool("mock", gateway.UsesMock()),
	)

	// Create the reconciliation engine
	engine := reconcile.NewEngine(dataStore, gateway, clock,
		reconcile.WithMetadataBaseURL(cfg.PublicBaseURL),
		reconcile.WithBatchWorkers(cfg.Worker.PoolSize),
	)
	defer engine.Close()

	// Create and start server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			Secret:   cfg.Auth.JWTSecret,
			TokenTTL: cfg.Auth.TokenTTL,
		},
	}, dataStore, engine)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
