// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pcdlite/pcdlite/internal/events"
)

// defaultPurgeInterval is how often the retention sweep runs.
const defaultPurgeInterval = time.Hour

// PurgeService periodically deletes events older than the retention
// window. It runs under the supervision tree so a failed sweep is
// retried with backoff rather than killing the process.
type PurgeService struct {
	store         *events.Store
	retentionDays int
	interval      time.Duration
	logger        zerolog.Logger
}

// NewPurgeService creates a retention sweeper for the event store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPurgeService(store *events.Store, retentionDays int, logger zerolog.Logger) *PurgeService {
	return &PurgeService{
		store:         store,
		retentionDays: retentionDays,
		interval:      defaultPurgeInterval,
		logger:        logger.With().Str("component", "purge").Logger(),
	}
}

// Serve implements suture.Service, sweeping once at startup and then on
// every interval tick until the context is canceled.
func (p *PurgeService) Serve(ctx context.Context) error {
	if err := p.sweep(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.sweep(ctx); err != nil {
				return err
			}
		}
	}
}

func (p *PurgeService) sweep(ctx context.Context) error {
	deleted, err := p.store.PurgeOlderThan(ctx, p.retentionDays)
	if err != nil {
		p.logger.Error().Err(err).Msg("retention sweep failed")
		return err
	}
	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Msg("retention sweep completed")
	}
	return nil
}

// String identifies the service in supervision logs.
func (p *PurgeService) String() string {
	return "event-purge"
}
