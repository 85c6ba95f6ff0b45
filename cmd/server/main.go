// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package main is the entry point for the PCD-Lite server.
//
// PCD-Lite is a prototype content discovery service. It answers natural
// language queries ("funny movies with tom hanks under 2 hours") with
// ranked recommendations from a small demo catalog, assigns each
// session to one of two ranking strategies for A/B comparison, and logs
// impression and click events for offline analysis.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load via Koanf v2 (defaults, YAML, env)
//  2. Logging: global zerolog logger
//  3. Catalog: CSV catalog, seeded with the bundled sample when missing
//  4. Recommendation engine: TF-IDF index built over the catalog
//  5. Event store: DuckDB with an optional CSV append mirror
//  6. HTTP server: chi router under a suture supervision tree
//
// The server handles graceful shutdown on SIGINT and SIGTERM, draining
// in-flight requests before closing the event store.
//
// Example usage:
//
//	export PCD_SERVER_PORT=8000
//	export PCD_CATALOG_PATH=data/movies.csv
//	./pcdlite
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pcdlite/pcdlite/internal/api"
	"github.com/pcdlite/pcdlite/internal/catalog"
	"github.com/pcdlite/pcdlite/internal/config"
	"github.com/pcdlite/pcdlite/internal/events"
	"github.com/pcdlite/pcdlite/internal/logging"
	"github.com/pcdlite/pcdlite/internal/metrics"
	"github.com/pcdlite/pcdlite/internal/recommend"
	"github.com/pcdlite/pcdlite/internal/supervisor"
	"github.com/pcdlite/pcdlite/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()
	logger.Info().
		Str("addr", cfg.Server.Addr()).
		Str("catalog", cfg.Catalog.Path).
		Msg("PCD-Lite starting")

	snap, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	metrics.CatalogSize.Set(float64(snap.Len()))

	engine := recommend.NewEngine(snap, logger)

	store, err := events.Open(cfg.Database.Path, cfg.Events.CSVPath, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open event store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Event store close failed")
		}
	}()

	handler := api.NewHandler(snap, engine, store, cfg.API, logger)
	router := api.NewRouter(handler, cfg.API)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddDataService(services.NewPurgeService(store, cfg.Events.RetentionDays, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", cfg.Server.Addr()).Msg("PCD-Lite ready")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree exited")
	}

	logger.Info().Msg("PCD-Lite shut down")
}
