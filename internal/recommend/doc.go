// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package recommend ranks catalog items under two interchangeable A/B
// strategies.
//
// Strategy A (popularity) scores candidates by raw popularity with
// additive rule-based boosts for matched genres, cast, vibe, and runtime
// closeness. It never falls back: an empty candidate set yields an empty
// result.
//
// Strategy B (similarity) scores candidates by TF-IDF cosine similarity
// between a pseudo-document built from the query filters and a lexical
// index precomputed over each item's title, overview, and genres. When
// filtering leaves no candidates it falls back to the full catalog, so
// this strategy never returns empty purely due to filter mismatch.
//
// Session-to-strategy assignment is a seedless FNV-1a hash of the session
// identifier reduced modulo two: pure, portable, and stable across
// processes and restarts.
//
// The lexical index is built once at engine construction and read-only
// afterwards, so the engine is safe for unsynchronized concurrent use.
package recommend
