package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"leadfunnel/internal/adapter/api"
	"leadfunnel/internal/adapter/cache"
	"leadfunnel/internal/adapter/gateway"
	httpadapter "leadfunnel/internal/adapter/http"
	"leadfunnel/internal/adapter/postgres"
	"leadfunnel/internal/adapter/token"
	"leadfunnel/internal/adapter/usecase"
	"leadfunnel/internal/config"
	"leadfunnel/internal/db"
)

// main loads configuration, connects the attempt journal database and the
// read cache, wires the platform API and payment gateway clients into the
// wizard, then serves the dashboard backend until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	redisClient, err := cache.Connect(ctx, cfg.Redis.Address)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	defer redisClient.Close()

	tokens := token.NewStore(cfg.API.Token)
	platform := api.NewClient(cfg.API.BaseURL, tokens, &http.Client{Timeout: cfg.API.Timeout}, logger)
	reads := cache.NewPlatformCache(redisClient, platform, cfg.Redis.TTL, logger)
	payments := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.PublishableKey,
		&http.Client{Timeout: cfg.Gateway.Timeout}, logger)
	if err = payments.Ready(); err != nil {
		logger.Warn("card payments disabled", slog.Any("error", err))
	}

	wizard := usecase.NewWizard(usecase.WizardDeps{
		Catalog:   reads,
		Wallet:    reads,
		Campaigns: reads,
		Funding:   platform,
		Gateway:   payments,
		Cache:     reads,
		Journal:   postgres.NewAttemptRepository(pool),
	}, logger)
	wallet := usecase.NewWalletService(reads, platform, payments, reads, logger)

	handler := httpadapter.NewHandler(wizard, wallet, tokens, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
