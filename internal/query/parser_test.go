// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package query

import (
	"testing"

	"github.com/pcdlite/pcdlite/internal/models"
)

func intPtr(v int) *int { return &v }

func containsGenre(genres []string, want string) bool {
	for _, g := range genres {
		if g == want {
			return true
		}
	}
	return false
}

func TestParseEmptyQuery(t *testing.T) {
	p := NewParser()
	f := p.Parse("", models.QueryTypeText)

	if !f.IsEmpty() {
		t.Errorf("Parse(\"\") = %+v, want all-empty filters", f)
	}
}

func TestParseGenres(t *testing.T) {
	p := NewParser()

	tests := []struct {
		query string
		want  []string
	}{
		{"find comedy movies", []string{"Comedy"}},
		{"something funny to watch", []string{"Comedy"}},
		{"scary horror films", []string{"Horror"}},
		{"space adventure", []string{"Action", "Sci-Fi"}},
		{"a romantic comedy", []string{"Comedy", "Romance"}},
		{"gibberish with no genre words", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f := p.Parse(tt.query, models.QueryTypeText)
			if len(f.Genres) != len(tt.want) {
				t.Fatalf("Genres = %v, want members %v", f.Genres, tt.want)
			}
			// Assert set membership only; inclusion order is a table
			// implementation detail.
			for _, w := range tt.want {
				if !containsGenre(f.Genres, w) {
					t.Errorf("Genres = %v, missing %q", f.Genres, w)
				}
			}
		})
	}
}

func TestParseActors(t *testing.T) {
	p := NewParser()

	f := p.Parse("show me movies with Tom Hanks", models.QueryTypeText)
	if !containsGenre(f.Actors, "Tom Hanks") {
		t.Errorf("Actors = %v, want Tom Hanks", f.Actors)
	}

	f = p.Parse("anything with leo dicaprio", models.QueryTypeText)
	if !containsGenre(f.Actors, "Leonardo DiCaprio") {
		t.Errorf("Actors = %v, want Leonardo DiCaprio via variant spelling", f.Actors)
	}

	f = p.Parse("find comedy movies", models.QueryTypeText)
	if len(f.Actors) != 0 {
		t.Errorf("Actors = %v, want none", f.Actors)
	}
}

func TestParseRuntime(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		query   string
		wantMin *int
		wantMax *int
	}{
		{"shorter than sets max", "find movies shorter than 120 minutes", nil, intPtr(120)},
		{"longer than sets min", "find movies longer than 90 minutes", intPtr(90), nil},
		{"under sets max", "movies under 100 minutes", nil, intPtr(100)},
		{"over hours converts", "movies over 2 hours", intPtr(120), nil},
		{"bare value defaults to max", "a 90 minutes movie", nil, intPtr(90)},
		{"fractional hours truncate", "about 1.5 hours long", intPtr(90), nil},
		{"no runtime", "find comedy movies", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := p.Parse(tt.query, models.QueryTypeText)
			checkBound(t, "RuntimeMin", f.RuntimeMin, tt.wantMin)
			checkBound(t, "RuntimeMax", f.RuntimeMax, tt.wantMax)
		})
	}
}

// TestParseRuntimeFirstPatternWins pins the documented first-match-wins
// contract: when both a minutes figure and an hours figure appear, only
// the earlier minutes pattern is consulted.
func TestParseRuntimeFirstPatternWins(t *testing.T) {
	p := NewParser()

	f := p.Parse("90 minutes or 2 hours", models.QueryTypeText)
	if f.RuntimeMax == nil || *f.RuntimeMax != 90 {
		t.Errorf("RuntimeMax = %v, want 90 (first pattern wins)", deref(f.RuntimeMax))
	}
	if f.RuntimeMin != nil {
		t.Errorf("RuntimeMin = %v, want nil (only one bound per call)", *f.RuntimeMin)
	}
}

func TestParseVibe(t *testing.T) {
	p := NewParser()

	tests := []struct {
		query string
		want  string
	}{
		{"something hilarious", "funny"},
		{"a deep meaningful film", "thought-provoking"},
		{"gritty and disturbing", "dark"},
		{"nothing moody here", ""},
		// "funny" precedes "light" in the vibe table; first entry wins
		// even though "fun" also triggers light.
		{"fun and funny", "funny"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f := p.Parse(tt.query, models.QueryTypeText)
			if f.Vibe != tt.want {
				t.Errorf("Vibe = %q, want %q", f.Vibe, tt.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		query   string
		wantMin *int
		wantMax *int
	}{
		{"decade shorthand", "find movies from the 1990s", intPtr(1990), intPtr(1999)},
		{"unqualified decade", "the 1980s ones", intPtr(1980), intPtr(1989)},
		{"from sets min", "movies from 1995", intPtr(1995), nil},
		{"after sets min", "released after 2000", intPtr(2000), nil},
		{"before sets max", "released before 2000", nil, intPtr(2000)},
		{"until sets max", "anything until 1985", nil, intPtr(1985)},
		{"bare year sets both", "movies 1994", intPtr(1994), intPtr(1994)},
		{"no year", "find comedy movies", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := p.Parse(tt.query, models.QueryTypeText)
			checkBound(t, "YearMin", f.YearMin, tt.wantMin)
			checkBound(t, "YearMax", f.YearMax, tt.wantMax)
		})
	}
}

// TestParseYearLastPatternWins pins the documented last-pattern-wins
// contract: with two bare years in one query, each pattern pass applies
// all its matches in order, so the later year ends up in both bounds.
func TestParseYearLastPatternWins(t *testing.T) {
	p := NewParser()

	f := p.Parse("1994 or 1999 movies", models.QueryTypeText)
	if f.YearMin == nil || *f.YearMin != 1999 {
		t.Errorf("YearMin = %v, want 1999 (last match wins)", deref(f.YearMin))
	}
	if f.YearMax == nil || *f.YearMax != 1999 {
		t.Errorf("YearMax = %v, want 1999 (last match wins)", deref(f.YearMax))
	}
}

func TestParseKeywords(t *testing.T) {
	p := NewParser()

	f := p.Parse("find movies about a computer hacker", models.QueryTypeText)

	want := map[string]bool{"about": true, "computer": true, "hacker": true}
	if len(f.Keywords) != len(want) {
		t.Fatalf("Keywords = %v, want exactly %v", f.Keywords, want)
	}
	for _, kw := range f.Keywords {
		if !want[kw] {
			t.Errorf("unexpected keyword %q (stop words and short tokens must be dropped)", kw)
		}
	}
}

func checkBound(t *testing.T, name string, got, want *int) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %d, want nil", name, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %d", name, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %d, want %d", name, *got, *want)
	}
}

func deref(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
