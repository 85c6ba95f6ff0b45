// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package query turns free-text queries into structured filters.
//
// Parser extracts genres, cast names, runtime bounds, a mood tag, residual
// keywords, and year bounds from lowercased query text using fixed trigger
// tables and ordered regular-expression pattern lists. Two parsing quirks
// are documented contracts, not accidents:
//
//   - Runtime extraction is first-pattern-wins: the first pattern in the
//     list that matches decides the value; later matches are ignored.
//   - Year extraction is last-pattern-wins: every pattern in the list is
//     evaluated and later matches overwrite earlier bounds.
//
// Mapper canonicalizes parser output for cross-boundary transmission. Its
// genre table is maintained independently of the parser's and the two can
// disagree on edge cases; they are kept separate on purpose (see DESIGN.md).
package query
