// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package query

import (
	"strings"

	"github.com/pcdlite/pcdlite/internal/models"
)

// normalizedGenreTable is the Mapper's own canonical genre table. It is
// maintained independently of the parser's genreTable and the trigger
// lists differ on edge cases (e.g. "laugh" triggers Comedy in the parser
// but is not a recognized variant here). The two tables are intentionally
// NOT unified; see the Open Questions section of DESIGN.md.
var normalizedGenreTable = []triggerEntry{
	{"Comedy", []string{"comedy", "funny", "humor", "humorous"}},
	{"Drama", []string{"drama", "serious", "emotional", "touching"}},
	{"Thriller", []string{"thriller", "suspense", "mystery"}},
	{"Action", []string{"action", "adventure", "exciting"}},
	{"Romance", []string{"romance", "romantic", "love"}},
	{"Horror", []string{"horror", "scary", "frightening"}},
	{"Sci-Fi", []string{"sci-fi", "science fiction", "futuristic"}},
	{"Fantasy", []string{"fantasy", "magical", "wizard"}},
	{"Crime", []string{"crime", "criminal", "gangster"}},
	{"Biography", []string{"biography", "biographical"}},
	{"History", []string{"historical", "history"}},
	{"Family", []string{"family", "kids", "children"}},
}

// Mapper canonicalizes parsed filters into the normalized form consumed
// by logging and debug surfaces. It is stateless and safe for concurrent
// use; Normalize is a pure projection, so applying it to equivalent
// inputs always yields the same output.
type Mapper struct{}

// NewMapper creates a metadata mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Normalize canonicalizes genre names through the mapper's genre table,
// lowercases actor names and keywords, and passes runtime/year bounds and
// the vibe tag through unchanged. Genres are deduplicated; their order is
// implementation-defined (first appearance here).
func (m *Mapper) Normalize(f models.ParsedFilters) models.NormalizedFilters {
	return models.NormalizedFilters{
		Genres:     m.normalizeGenres(f.Genres),
		Actors:     lowerAll(f.Actors),
		RuntimeMin: f.RuntimeMin,
		RuntimeMax: f.RuntimeMax,
		Vibe:       f.Vibe,
		Keywords:   lowerAll(f.Keywords),
		YearMin:    f.YearMin,
		YearMax:    f.YearMax,
	}
}

// normalizeGenres maps each input genre onto the mapper's canonical name,
// matching either a variant spelling or the canonical name itself. Inputs
// recognized by neither are dropped.
func (m *Mapper) normalizeGenres(genres []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		lower := strings.ToLower(g)
		for _, entry := range normalizedGenreTable {
			if lower != strings.ToLower(entry.canonical) && !containsString(entry.triggers, lower) {
				continue
			}
			if _, dup := seen[entry.canonical]; !dup {
				seen[entry.canonical] = struct{}{}
				out = append(out, entry.canonical)
			}
			break
		}
	}
	return out
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
