// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package models defines the shared data structures for PCD-Lite.
//
// It contains the catalog record (Movie), the structured query filters
// produced by the interpreter (ParsedFilters) and their normalized wire
// form (NormalizedFilters), the A/B strategy enumeration, and the event
// types persisted by the event store.
//
// Types in this package carry no behavior beyond trivial accessors so
// they can be shared across the catalog, query, recommend, events, and
// api packages without creating import cycles.
package models
