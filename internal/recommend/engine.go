// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package recommend

import (
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pcdlite/pcdlite/internal/catalog"
	"github.com/pcdlite/pcdlite/internal/models"
)

// Boost weights per strategy. The popularity strategy weighs rule matches
// heavier because its base score is an unbounded popularity value; the
// similarity strategy's base score is a cosine in [0, 1].
const (
	popularityGenreBoost = 0.5
	popularityCastBoost  = 0.3
	similarityGenreBoost = 0.3
	similarityCastBoost  = 0.2
	runtimeBoostWeight   = 0.2
)

// ErrInvalidLimit is returned when Recommend is called with limit <= 0.
// This is a caller contract violation, not a ranking outcome.
var ErrInvalidLimit = errors.New("recommendation limit must be positive")

// ErrUnknownStrategy is returned for a strategy tag outside the A/B set.
var ErrUnknownStrategy = errors.New("unknown ranking strategy")

// Engine ranks catalog items under the two A/B strategies. The lexical
// index is built once at construction; afterwards the engine is
// read-only and safe for concurrent use.
type Engine struct {
	catalog *catalog.Snapshot
	index   *lexicalIndex
	posByID map[int]int
	logger  zerolog.Logger
}

// NewEngine builds an engine over the catalog snapshot, vectorizing each
// item's title, overview, and genre tags into the lexical index.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(snap *catalog.Snapshot, logger zerolog.Logger) *Engine {
	movies := snap.All()
	docs := make([]string, len(movies))
	posByID := make(map[int]int, len(movies))
	for i, m := range movies {
		docs[i] = m.Title + " " + m.Overview + " " + strings.Join(m.Genres, " ")
		posByID[m.ID] = i
	}
	index := buildIndex(docs)

	log := logger.With().Str("component", "recommend").Logger()
	log.Info().
		Int("documents", len(docs)).
		Int("vocabulary", len(index.vocab)).
		Msg("lexical index built")

	return &Engine{catalog: snap, index: index, posByID: posByID, logger: log}
}

// scored pairs a catalog position with its strategy score. The catalog
// position doubles as the stable tie-break key.
type scored struct {
	catalogPos int
	score      float64
}

// Recommend returns at most limit items ranked under the given strategy.
// Ties preserve catalog iteration order. A limit <= 0 is rejected with
// ErrInvalidLimit, and a strategy outside the A/B set with
// ErrUnknownStrategy.
func (e *Engine) Recommend(filters *models.ParsedFilters, strategy models.Strategy, limit int) ([]models.Movie, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	candidates := e.catalog.Search(filters)

	switch strategy {
	case models.StrategySimilarity:
		// Similarity never goes empty purely due to filter mismatch.
		if len(candidates) == 0 {
			candidates = e.catalog.All()
		}
		return e.rankBySimilarity(candidates, filters, limit), nil
	case models.StrategyPopularity:
		if len(candidates) == 0 {
			return []models.Movie{}, nil
		}
		return e.rankByPopularity(candidates, filters, limit), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// rankByPopularity scores candidates by popularity plus rule boosts.
func (e *Engine) rankByPopularity(candidates []models.Movie, f *models.ParsedFilters, limit int) []models.Movie {
	entries := make([]scored, len(candidates))
	for i := range candidates {
		m := &candidates[i]
		score := m.Popularity
		score += popularityGenreBoost * float64(matchCount(f.Genres, m.Genres))
		score += popularityCastBoost * float64(matchCount(f.Actors, m.Cast))
		if f.Vibe != "" {
			score += vibeBoost(m, f.Vibe)
		}
		score += runtimeClosenessBoost(m, f)
		entries[i] = scored{catalogPos: i, score: score}
	}
	return take(candidates, entries, limit)
}

// runtimeClosenessBoost rewards items near the midpoint of a fully
// bounded runtime window, fading to zero over a 60-minute distance.
func runtimeClosenessBoost(m *models.Movie, f *models.ParsedFilters) float64 {
	if f.RuntimeMin == nil || f.RuntimeMax == nil {
		return 0
	}
	target := float64(*f.RuntimeMin+*f.RuntimeMax) / 2
	diff := float64(m.Runtime) - target
	if diff < 0 {
		diff = -diff
	}
	closeness := 1 - diff/60
	if closeness < 0 {
		closeness = 0
	}
	return closeness * runtimeBoostWeight
}

// rankBySimilarity scores candidates by cosine similarity between the
// filter pseudo-document and each item's precomputed vector, plus the
// shared boosts at similarity weights.
func (e *Engine) rankBySimilarity(candidates []models.Movie, f *models.ParsedFilters, limit int) []models.Movie {
	queryParts := make([]string, 0, len(f.Keywords)+len(f.Genres)+len(f.Actors))
	queryParts = append(queryParts, f.Keywords...)
	queryParts = append(queryParts, f.Genres...)
	queryParts = append(queryParts, f.Actors...)
	queryVec := e.index.transform(strings.Join(queryParts, " "))

	entries := make([]scored, len(candidates))
	for i := range candidates {
		m := &candidates[i]
		score := e.itemSimilarity(m.ID, queryVec)
		score += similarityGenreBoost * float64(matchCount(f.Genres, m.Genres))
		score += similarityCastBoost * float64(matchCount(f.Actors, m.Cast))
		if f.Vibe != "" {
			score += vibeBoost(m, f.Vibe)
		}
		entries[i] = scored{catalogPos: i, score: score}
	}
	return take(candidates, entries, limit)
}

// itemSimilarity looks up the item's precomputed vector by catalog ID.
// Unknown IDs score zero.
func (e *Engine) itemSimilarity(movieID int, queryVec sparseVec) float64 {
	pos, ok := e.posByID[movieID]
	if !ok {
		return 0
	}
	return cosine(queryVec, e.index.vectors[pos])
}

// take sorts entries by descending score with a stable tie-break on
// candidate order and returns the top limit movies.
func take(candidates []models.Movie, entries []scored, limit int) []models.Movie {
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].score > entries[b].score
	})
	if limit > len(entries) {
		limit = len(entries)
	}
	out := make([]models.Movie, 0, limit)
	for _, entry := range entries[:limit] {
		out = append(out, candidates[entry.catalogPos])
	}
	return out
}
