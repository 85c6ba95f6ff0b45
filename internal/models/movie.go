// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package models

// Movie is an immutable catalog record. Instances are created once at
// catalog load and never mutated afterwards, so they may be shared freely
// between concurrent readers.
type Movie struct {
	// ID is the unique, stable catalog identifier.
	ID int `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Genres is the ordered list of genre tags.
	Genres []string `json:"genre"`

	// Cast is the ordered list of cast member names.
	Cast []string `json:"cast"`

	// Overview is the free-text synopsis.
	Overview string `json:"overview"`

	// Runtime is the duration in minutes (> 0).
	Runtime int `json:"runtime"`

	// Popularity is an unbounded popularity score.
	Popularity float64 `json:"popularity"`

	// ReleaseYear is the year of release.
	ReleaseYear int `json:"release_year"`

	// Director is the director's name.
	Director string `json:"director"`

	// Rating is the quality rating.
	Rating float64 `json:"rating"`
}
