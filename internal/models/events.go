// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package models

import "time"

// EventType classifies logged recommendation events.
type EventType string

const (
	// EventImpression records that an item was shown to a session.
	EventImpression EventType = "impression"
	// EventClick records that a shown item was clicked.
	EventClick EventType = "click"
)

// Event is one impression or click record. Impressions carry the parsed
// filters of the originating query; clicks do not.
type Event struct {
	// EventID is a UUID assigned at log time.
	EventID string `json:"event_id"`

	// SessionID identifies the user session.
	SessionID string `json:"session_id"`

	// Type is "impression" or "click".
	Type EventType `json:"event_type"`

	// Variant is the strategy bucket that produced the result list.
	Variant Strategy `json:"variant"`

	// MovieID is the catalog item shown or clicked.
	MovieID int `json:"movie_id"`

	// Position is the 1-based rank of the item in the result list.
	Position int `json:"position"`

	// Filters holds the parsed filters for impressions; nil for clicks.
	Filters *ParsedFilters `json:"filters,omitempty"`

	// Timestamp is when the event was logged.
	Timestamp time.Time `json:"timestamp"`

	// RequestID links the event to the originating HTTP request.
	RequestID string `json:"request_id"`
}

// GenreCount pairs a genre with its occurrence count in impression filters.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// MovieClicks pairs a movie with its click count.
type MovieClicks struct {
	MovieID int `json:"movie_id"`
	Clicks  int `json:"clicks"`
}

// AnalyticsMetrics aggregates event counts and click-through rates for an
// observation window. CTR values are percentages.
type AnalyticsMetrics struct {
	TotalSessions       int          `json:"total_sessions"`
	TotalImpressions    int          `json:"total_impressions"`
	TotalClicks         int          `json:"total_clicks"`
	CTR                 float64      `json:"ctr"`
	VariantAImpressions int          `json:"variant_a_impressions"`
	VariantAClicks      int          `json:"variant_a_clicks"`
	VariantACTR         float64      `json:"variant_a_ctr"`
	VariantBImpressions int          `json:"variant_b_impressions"`
	VariantBClicks      int          `json:"variant_b_clicks"`
	VariantBCTR         float64      `json:"variant_b_ctr"`
	MostPopularGenres   []GenreCount `json:"most_popular_genres"`
	MostClickedMovies   []MovieClicks `json:"most_clicked_movies"`
}

// VariantStats holds per-variant counts for the A/B comparison endpoint.
type VariantStats struct {
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`
	Sessions    int `json:"sessions"`
}

// VariantPerformance compares the two strategy buckets.
type VariantPerformance struct {
	VariantA VariantStats `json:"variant_a"`
	VariantB VariantStats `json:"variant_b"`
}
