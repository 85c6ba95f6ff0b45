// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pcdlite/pcdlite/internal/models"
)

// csvHeader is the column layout of the catalog file.
var csvHeader = []string{
	"id", "title", "genre", "cast", "overview",
	"runtime", "popularity", "release_year", "director", "rating",
}

// Snapshot is an immutable view of the loaded catalog. The movie slice is
// shared by reference between all callers; none of them may modify it.
type Snapshot struct {
	movies []models.Movie
	byID   map[int]int // movie ID -> index in movies
}

// Load reads the catalog CSV at path, creating it from the embedded sample
// catalog if it does not exist.
func Load(path string, logger zerolog.Logger) (*Snapshot, error) {
	log := logger.With().Str("component", "catalog").Logger()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info().Str("path", path).Msg("catalog file missing, writing sample catalog")
		if err := writeSampleCatalog(path); err != nil {
			return nil, fmt.Errorf("failed to create sample catalog: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	movies := make([]models.Movie, 0, len(records)-1)
	for i, rec := range records[1:] {
		m, err := movieFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+2, err)
		}
		movies = append(movies, m)
	}

	log.Info().Int("movies", len(movies)).Str("path", path).Msg("catalog loaded")
	return NewSnapshot(movies), nil
}

// NewSnapshot builds a snapshot over the given movies. The slice is
// retained; callers must not modify it afterwards.
func NewSnapshot(movies []models.Movie) *Snapshot {
	byID := make(map[int]int, len(movies))
	for i, m := range movies {
		byID[m.ID] = i
	}
	return &Snapshot{movies: movies, byID: byID}
}

// movieFromRecord parses one CSV row. Genre and cast cells hold
// comma-separated lists, matching the original flat-file format.
func movieFromRecord(rec []string) (models.Movie, error) {
	if len(rec) != len(csvHeader) {
		return models.Movie{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(rec))
	}

	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return models.Movie{}, fmt.Errorf("invalid id %q: %w", rec[0], err)
	}
	runtime, err := strconv.Atoi(rec[5])
	if err != nil {
		return models.Movie{}, fmt.Errorf("invalid runtime %q: %w", rec[5], err)
	}
	popularity, err := strconv.ParseFloat(rec[6], 64)
	if err != nil {
		return models.Movie{}, fmt.Errorf("invalid popularity %q: %w", rec[6], err)
	}
	year, err := strconv.Atoi(rec[7])
	if err != nil {
		return models.Movie{}, fmt.Errorf("invalid release_year %q: %w", rec[7], err)
	}
	rating, err := strconv.ParseFloat(rec[9], 64)
	if err != nil {
		return models.Movie{}, fmt.Errorf("invalid rating %q: %w", rec[9], err)
	}

	return models.Movie{
		ID:          id,
		Title:       rec[1],
		Genres:      splitList(rec[2]),
		Cast:        splitList(rec[3]),
		Overview:    rec[4],
		Runtime:     runtime,
		Popularity:  popularity,
		ReleaseYear: year,
		Director:    rec[8],
		Rating:      rating,
	}, nil
}

// splitList splits a comma-separated cell into trimmed entries.
func splitList(cell string) []string {
	if cell == "" {
		return []string{}
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// writeSampleCatalog writes the embedded sample catalog CSV to path.
func writeSampleCatalog(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create catalog directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range sampleMovies {
		rec := []string{
			strconv.Itoa(m.ID),
			m.Title,
			strings.Join(m.Genres, ","),
			strings.Join(m.Cast, ","),
			m.Overview,
			strconv.Itoa(m.Runtime),
			strconv.FormatFloat(m.Popularity, 'f', 1, 64),
			strconv.Itoa(m.ReleaseYear),
			m.Director,
			strconv.FormatFloat(m.Rating, 'f', 1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// All returns every movie in catalog iteration order. The returned slice
// is shared; callers must treat it as read-only.
func (s *Snapshot) All() []models.Movie {
	return s.movies
}

// Len returns the number of movies in the catalog.
func (s *Snapshot) Len() int {
	return len(s.movies)
}

// ByID returns the movie with the given ID, or false if absent.
func (s *Snapshot) ByID(id int) (models.Movie, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return s.movies[i], true
}

// Search returns the movies matching every present filter field, in
// catalog iteration order. Absent fields impose no constraint; if no
// fields are set all movies pass.
func (s *Snapshot) Search(filters *models.ParsedFilters) []models.Movie {
	out := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if matches(&m, filters) {
			out = append(out, m)
		}
	}
	return out
}

// matches applies the shared attribute pre-filter for one movie.
func matches(m *models.Movie, f *models.ParsedFilters) bool {
	if f == nil {
		return true
	}
	if len(f.Genres) > 0 && !anyInSet(f.Genres, m.Genres) {
		return false
	}
	if len(f.Actors) > 0 && !anyInSet(f.Actors, m.Cast) {
		return false
	}
	if f.RuntimeMin != nil && m.Runtime < *f.RuntimeMin {
		return false
	}
	if f.RuntimeMax != nil && m.Runtime > *f.RuntimeMax {
		return false
	}
	if f.YearMin != nil && m.ReleaseYear < *f.YearMin {
		return false
	}
	if f.YearMax != nil && m.ReleaseYear > *f.YearMax {
		return false
	}
	if len(f.Keywords) > 0 {
		overview := strings.ToLower(m.Overview)
		found := false
		for _, kw := range f.Keywords {
			if strings.Contains(overview, strings.ToLower(kw)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// anyInSet reports whether any wanted value equals a set member,
// case-insensitively.
func anyInSet(wanted, set []string) bool {
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, s := range set {
			if strings.ToLower(s) == lw {
				return true
			}
		}
	}
	return false
}
