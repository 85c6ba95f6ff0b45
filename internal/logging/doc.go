// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package logging provides centralized zerolog-based logging.
//
// Initialize once at startup, then either use the package-level event
// starters or derive component loggers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("server starting")
//
//	log := logging.With().Str("component", "catalog").Logger()
//	log.Info().Int("movies", n).Msg("catalog loaded")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// chain is silently dropped.
package logging
