// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package api provides the HTTP surface of the service using the chi
// router.
//
// Every response uses a common envelope with a status, a payload, and
// an optional error. The search endpoint runs the full discovery
// pipeline: voice normalization (for voice queries), query parsing,
// filter normalization, A/B variant assignment, ranking, and impression
// logging. A cached snapshot of the last query is exposed on
// GET /debug/last-query; the handler owns that snapshot so the core
// pipeline stays stateless.
package api
