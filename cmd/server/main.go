// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Command server runs the recommendation HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/api"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/config"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/logging"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/metrics"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/recommend"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/store"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	log := logging.WithComponent("server")

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logging.Logger())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	ds, err := store.LoadSnapshot(cfg.Data.SnapshotPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if err := engine.Fit(ds); err != nil {
		return fmt.Errorf("fit engine: %w", err)
	}
	metrics.RecordFit(len(ds.Users), len(ds.Restaurants), len(ds.Interactions))

	handler := api.NewHandler(engine)
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler, cfg.Security),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}
