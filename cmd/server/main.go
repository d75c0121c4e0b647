package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plantvision/plantvision-api/internal/api"
	"github.com/plantvision/plantvision-api/internal/infrastructure/config"
	"github.com/plantvision/plantvision-api/internal/infrastructure/db/postgres"
	redisdb "github.com/plantvision/plantvision-api/internal/infrastructure/db/redis"
	"github.com/plantvision/plantvision-api/internal/infrastructure/inference"
	"github.com/plantvision/plantvision-api/internal/infrastructure/storage"
	"github.com/plantvision/plantvision-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Model and label artifacts load once, before the listener starts; a
	// missing or corrupt artifact aborts startup.
	classifier, err := inference.NewClassifier(inference.Config{
		ModelPath:  cfg.Model.Path,
		LabelsPath: cfg.Model.LabelsPath,
		ImageSize:  cfg.Model.ImageSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("model load failed")
	}
	defer classifier.Close()

	log.Info().
		Str("model", cfg.Model.Path).
		Int("classes", len(classifier.Labels())).
		Msg("classification model loaded")

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	e := api.NewRouter(db, rdb, classifier, uploads, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
