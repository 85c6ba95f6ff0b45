// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package recommend

import (
	"strings"

	"github.com/pcdlite/pcdlite/internal/models"
)

// vibeBoostTable maps each vibe tag to the trigger keywords that earn an
// item a scoring boost. This table is scoring vocabulary and is distinct
// from the parser's vibe extraction triggers.
var vibeBoostTable = map[string][]string{
	"funny":             {"comedy", "funny", "hilarious", "humor", "laugh"},
	"serious":           {"drama", "serious", "emotional", "intense", "heavy"},
	"romantic":          {"romance", "romantic", "love", "romantic comedy"},
	"exciting":          {"action", "thriller", "adventure", "exciting", "thrilling"},
	"scary":             {"horror", "scary", "frightening", "terrifying"},
	"thought-provoking": {"drama", "biography", "history", "philosophical"},
	"light":             {"comedy", "family", "romance", "fun", "entertaining"},
	"dark":              {"crime", "thriller", "drama", "gritty", "intense"},
}

// vibeBoost scores how well an item matches the requested vibe: 0.5 for
// each genre tag containing a trigger, 0.1 for each trigger occurring in
// the overview, capped at 1.0. An unknown vibe contributes nothing.
func vibeBoost(m *models.Movie, vibe string) float64 {
	triggers, ok := vibeBoostTable[vibe]
	if !ok {
		return 0
	}

	var boost float64
	for _, genre := range m.Genres {
		lower := strings.ToLower(genre)
		for _, trigger := range triggers {
			if strings.Contains(lower, trigger) {
				boost += 0.5
				break
			}
		}
	}

	overview := strings.ToLower(m.Overview)
	for _, trigger := range triggers {
		if strings.Contains(overview, trigger) {
			boost += 0.1
		}
	}

	if boost > 1.0 {
		boost = 1.0
	}
	return boost
}

// matchCount returns how many wanted values appear in the item's tag
// list, compared case-insensitively.
func matchCount(wanted, tags []string) int {
	count := 0
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, tag := range tags {
			if strings.ToLower(tag) == lw {
				count++
				break
			}
		}
	}
	return count
}
