// Package main is the entry point for the staffing admin API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/staffhub/admin-api/docs"
	"github.com/staffhub/admin-api/internal/api"
	"github.com/staffhub/admin-api/internal/api/metrics"
	"github.com/staffhub/admin-api/internal/infrastructure/config"
	"github.com/staffhub/admin-api/internal/infrastructure/db/postgres"
	"github.com/staffhub/admin-api/internal/infrastructure/db/redis"
	"github.com/staffhub/admin-api/internal/infrastructure/mailer"
	"github.com/staffhub/admin-api/pkg/logger"
)

// @title                      StaffHub Admin API
// @version                    1.0
// @description                Administrative backend for users, clients, accounts and assignations.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the session token.
func main() {
	bootLog := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Load(bootLog)

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	dispatcher := mailer.NewDispatcher(cfg.Mailer.Workers, mailer.LogSender{Log: log}, log)
	dispatcher.Start(ctx)
	go watchQueueDepth(ctx, dispatcher)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("admin api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// watchQueueDepth samples the mail dispatcher backlog into the gauge.
func watchQueueDepth(ctx context.Context, dispatcher *mailer.Dispatcher) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.MailerQueueDepth.Set(float64(dispatcher.QueueDepth()))
		}
	}
}
