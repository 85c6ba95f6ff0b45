// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package events persists impression and click events and aggregates
// them into A/B analytics.
//
// Events land in a DuckDB table, with an optional append-only CSV
// mirror for offline analysis. Impressions carry the parsed filters of
// the originating query as a JSON column; clicks do not.
//
// Aggregations (click-through rates, per-variant splits, top genres,
// most-clicked items) are computed over a trailing window of whole
// days. CTR values are percentages; a variant with zero impressions
// reports a CTR of zero rather than dividing by zero.
package events
