// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pcdlite/pcdlite/internal/models"
)

func intPtr(v int) *int { return &v }

func loadTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	snap, err := Load(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return snap
}

func TestLoadCreatesSampleCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "catalog.csv")

	snap, err := Load(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Len() != len(sampleMovies) {
		t.Errorf("Len() = %d, want %d", snap.Len(), len(sampleMovies))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("sample catalog not written: %v", err)
	}

	// Reload from the written file; the round trip must be lossless.
	snap2, err := Load(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if snap2.Len() != snap.Len() {
		t.Errorf("reloaded Len() = %d, want %d", snap2.Len(), snap.Len())
	}
	m, ok := snap2.ByID(1)
	if !ok {
		t.Fatal("ByID(1) not found after reload")
	}
	if m.Title != "Forrest Gump" {
		t.Errorf("ByID(1).Title = %q, want %q", m.Title, "Forrest Gump")
	}
	if len(m.Genres) != 3 || m.Genres[0] != "Drama" {
		t.Errorf("ByID(1).Genres = %v, want [Drama Comedy Romance]", m.Genres)
	}
}

func TestByID(t *testing.T) {
	snap := loadTestSnapshot(t)

	m, ok := snap.ByID(9)
	if !ok {
		t.Fatal("ByID(9) not found")
	}
	if m.Title != "The Matrix" {
		t.Errorf("ByID(9).Title = %q, want The Matrix", m.Title)
	}

	if _, ok := snap.ByID(9999); ok {
		t.Error("ByID(9999) = found, want not found")
	}
}

func TestSearch(t *testing.T) {
	snap := loadTestSnapshot(t)

	tests := []struct {
		name    string
		filters models.ParsedFilters
		wantIDs []int
	}{
		{
			name:    "no filters returns everything",
			filters: models.ParsedFilters{},
			wantIDs: nil, // checked by count below
		},
		{
			name:    "genre match is case-insensitive",
			filters: models.ParsedFilters{Genres: []string{"sci-fi"}},
			wantIDs: []int{9, 14, 18},
		},
		{
			name:    "actor match",
			filters: models.ParsedFilters{Actors: []string{"tom hanks"}},
			wantIDs: []int{1},
		},
		{
			name:    "runtime window",
			filters: models.ParsedFilters{RuntimeMin: intPtr(190), RuntimeMax: intPtr(210)},
			wantIDs: []int{6, 7},
		},
		{
			name:    "inverted runtime range matches nothing",
			filters: models.ParsedFilters{RuntimeMin: intPtr(200), RuntimeMax: intPtr(100)},
			wantIDs: []int{},
		},
		{
			name:    "exact year",
			filters: models.ParsedFilters{YearMin: intPtr(1999), YearMax: intPtr(1999)},
			wantIDs: []int{8, 9},
		},
		{
			name:    "keyword substring in overview",
			filters: models.ParsedFilters{Keywords: []string{"hacker"}},
			wantIDs: []int{9},
		},
		{
			name:    "any keyword suffices",
			filters: models.ParsedFilters{Keywords: []string{"zzznope", "hacker"}},
			wantIDs: []int{9},
		},
		{
			name: "all present fields must match",
			filters: models.ParsedFilters{
				Genres: []string{"Crime"},
				Actors: []string{"Kevin Spacey"},
			},
			wantIDs: []int{19, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snap.Search(&tt.filters)
			if tt.wantIDs == nil {
				if len(got) != snap.Len() {
					t.Fatalf("Search() returned %d movies, want full catalog (%d)", len(got), snap.Len())
				}
				return
			}
			gotIDs := make([]int, len(got))
			for i, m := range got {
				gotIDs[i] = m.ID
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("Search() IDs = %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("Search() IDs = %v, want %v", gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	snap := loadTestSnapshot(t)
	got := snap.Search(&models.ParsedFilters{Genres: []string{"Drama"}})
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("results not in catalog order: %d before %d", got[i-1].ID, got[i].ID)
		}
	}
}
