package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kate00gas/restaurant-delivery/internal/api"
	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/core/service"
	"github.com/kate00gas/restaurant-delivery/internal/infrastructure/backend"
	"github.com/kate00gas/restaurant-delivery/internal/infrastructure/config"
	redisdb "github.com/kate00gas/restaurant-delivery/internal/infrastructure/db/redis"
	"github.com/kate00gas/restaurant-delivery/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Env != "production")
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	flashStore := redisdb.NewFlashStore(rdb)

	client := backend.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout}, log)

	sessions := service.NewSessions(sessionStore, log)
	gate := service.NewGate(log)
	alerts := alert.New(flashStore, log)

	e, err := api.NewRouter(api.RouterDeps{
		API:          client,
		Sessions:     sessions,
		Gate:         gate,
		Alerts:       alerts,
		SessionStore: sessionStore,
		Backend:      client,
		CookieName:   cfg.Session.CookieName,
		Log:          log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("starting web frontend")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
