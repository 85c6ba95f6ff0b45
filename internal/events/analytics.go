// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package events

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pcdlite/pcdlite/internal/models"
)

// topN caps the top-genres and most-clicked lists.
const topN = 5

// AnalyticsMetrics aggregates the trailing window of whole days into
// totals, overall and per-variant click-through rates, the most
// requested genres from impression filters, and the most clicked items.
func (s *Store) AnalyticsMetrics(ctx context.Context, days int) (*models.AnalyticsMetrics, error) {
	evs, err := s.windowEvents(ctx, days)
	if err != nil {
		return nil, err
	}

	m := &models.AnalyticsMetrics{
		MostPopularGenres: []models.GenreCount{},
		MostClickedMovies: []models.MovieClicks{},
	}
	if len(evs) == 0 {
		return m, nil
	}

	sessions := map[string]struct{}{}
	for _, ev := range evs {
		sessions[ev.SessionID] = struct{}{}
		switch ev.Type {
		case models.EventImpression:
			m.TotalImpressions++
			switch ev.Variant {
			case models.StrategyPopularity:
				m.VariantAImpressions++
			case models.StrategySimilarity:
				m.VariantBImpressions++
			}
		case models.EventClick:
			m.TotalClicks++
			switch ev.Variant {
			case models.StrategyPopularity:
				m.VariantAClicks++
			case models.StrategySimilarity:
				m.VariantBClicks++
			}
		}
	}
	m.TotalSessions = len(sessions)
	m.CTR = ctr(m.TotalClicks, m.TotalImpressions)
	m.VariantACTR = ctr(m.VariantAClicks, m.VariantAImpressions)
	m.VariantBCTR = ctr(m.VariantBClicks, m.VariantBImpressions)
	m.MostPopularGenres = topGenres(evs)
	m.MostClickedMovies = topClicked(evs)
	return m, nil
}

// VariantPerformance reports per-variant impression, click, and session
// counts over the trailing window.
func (s *Store) VariantPerformance(ctx context.Context, days int) (*models.VariantPerformance, error) {
	evs, err := s.windowEvents(ctx, days)
	if err != nil {
		return nil, err
	}

	perf := &models.VariantPerformance{}
	sessionsA := map[string]struct{}{}
	sessionsB := map[string]struct{}{}
	for _, ev := range evs {
		switch ev.Variant {
		case models.StrategyPopularity:
			sessionsA[ev.SessionID] = struct{}{}
			tally(&perf.VariantA, ev.Type)
		case models.StrategySimilarity:
			sessionsB[ev.SessionID] = struct{}{}
			tally(&perf.VariantB, ev.Type)
		}
	}
	perf.VariantA.Sessions = len(sessionsA)
	perf.VariantB.Sessions = len(sessionsB)
	return perf, nil
}

func (s *Store) windowEvents(ctx context.Context, days int) ([]models.Event, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	evs, err := s.Events(ctx, Filter{Start: &start, End: &end})
	if err != nil {
		return nil, fmt.Errorf("window events: %w", err)
	}
	return evs, nil
}

func tally(stats *models.VariantStats, t models.EventType) {
	switch t {
	case models.EventImpression:
		stats.Impressions++
	case models.EventClick:
		stats.Clicks++
	}
}

// ctr returns clicks over impressions as a percentage, zero when there
// are no impressions.
func ctr(clicks, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// topGenres counts genre occurrences across impression filters and
// returns the topN, sorted by count descending with first-seen order
// breaking ties.
func topGenres(evs []models.Event) []models.GenreCount {
	counts := map[string]int{}
	order := []string{}
	for _, ev := range evs {
		if ev.Filters == nil {
			continue
		}
		for _, genre := range ev.Filters.Genres {
			if _, seen := counts[genre]; !seen {
				order = append(order, genre)
			}
			counts[genre]++
		}
	}

	out := make([]models.GenreCount, 0, len(order))
	for _, genre := range order {
		out = append(out, models.GenreCount{Genre: genre, Count: counts[genre]})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// topClicked counts clicks per movie and returns the topN, sorted by
// count descending with first-seen order breaking ties.
func topClicked(evs []models.Event) []models.MovieClicks {
	counts := map[int]int{}
	order := []int{}
	for _, ev := range evs {
		if ev.Type != models.EventClick || ev.MovieID == 0 {
			continue
		}
		if _, seen := counts[ev.MovieID]; !seen {
			order = append(order, ev.MovieID)
		}
		counts[ev.MovieID]++
	}

	out := make([]models.MovieClicks, 0, len(order))
	for _, id := range order {
		out = append(out, models.MovieClicks{MovieID: id, Clicks: counts[id]})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Clicks > out[b].Clicks })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
