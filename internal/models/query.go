// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package models

// QueryType distinguishes typed queries from pre-transcribed voice input.
type QueryType string

const (
	// QueryTypeText is an ordinary typed query.
	QueryTypeText QueryType = "text"
	// QueryTypeVoice is a pre-transcribed voice query that must pass
	// through the voice normalizer before parsing.
	QueryTypeVoice QueryType = "voice"
)

// Valid reports whether the query type is one of the known values.
func (t QueryType) Valid() bool {
	return t == QueryTypeText || t == QueryTypeVoice
}

// Strategy is the A/B bucket governing which ranking algorithm answers a
// query. The wire values "A" and "B" match the original experiment labels.
type Strategy string

const (
	// StrategyPopularity is variant A: popularity score with rule-based boosts.
	StrategyPopularity Strategy = "A"
	// StrategySimilarity is variant B: TF-IDF cosine similarity with boosts.
	StrategySimilarity Strategy = "B"
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyPopularity:
		return "popularity"
	case StrategySimilarity:
		return "similarity"
	default:
		return "unknown"
	}
}

// ParsedFilters is the structured filter set extracted from one query.
// Zero values mean "no constraint". When both bounds of a range are set
// the interpreter does NOT guarantee min <= max; consumers must tolerate
// inverted ranges.
type ParsedFilters struct {
	// Genres holds canonical genre names in display casing.
	Genres []string `json:"genres"`

	// Actors holds canonical cast names in display casing.
	Actors []string `json:"actors"`

	// RuntimeMin is the minimum runtime in minutes, if present.
	RuntimeMin *int `json:"runtime_min"`

	// RuntimeMax is the maximum runtime in minutes, if present.
	RuntimeMax *int `json:"runtime_max"`

	// Vibe is the extracted mood tag, if any (e.g. "funny", "dark").
	Vibe string `json:"vibe,omitempty"`

	// Keywords holds residual lowercased query tokens.
	Keywords []string `json:"keywords"`

	// YearMin is the minimum release year, if present.
	YearMin *int `json:"year_min"`

	// YearMax is the maximum release year, if present.
	YearMax *int `json:"year_max"`
}

// IsEmpty reports whether no filter field is set.
func (f *ParsedFilters) IsEmpty() bool {
	return len(f.Genres) == 0 && len(f.Actors) == 0 &&
		f.RuntimeMin == nil && f.RuntimeMax == nil &&
		f.Vibe == "" && len(f.Keywords) == 0 &&
		f.YearMin == nil && f.YearMax == nil
}

// NormalizedFilters is the canonicalized, cross-boundary form of
// ParsedFilters used for logging and debug surfaces. Genre names are
// canonicalized through the normalizer's own genre table; actor names and
// keywords are lowercased; bounds and vibe pass through unchanged.
type NormalizedFilters struct {
	Genres     []string `json:"genres"`
	Actors     []string `json:"actors"`
	RuntimeMin *int     `json:"runtime_min"`
	RuntimeMax *int     `json:"runtime_max"`
	Vibe       string   `json:"vibe,omitempty"`
	Keywords   []string `json:"keywords"`
	YearMin    *int     `json:"year_min"`
	YearMax    *int     `json:"year_max"`
}
