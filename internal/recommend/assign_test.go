// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package recommend

import (
	"fmt"
	"testing"

	"github.com/pcdlite/pcdlite/internal/models"
)

func TestAssignStrategyDeterministic(t *testing.T) {
	ids := []string{"", "session-1", "session-2", "a", "b", "0f8fad5b-d9cb-469f-a165-70867728950e"}
	for _, id := range ids {
		first := AssignStrategy(id)
		for i := 0; i < 100; i++ {
			if got := AssignStrategy(id); got != first {
				t.Fatalf("AssignStrategy(%q) not deterministic: got %v then %v", id, first, got)
			}
		}
	}
}

func TestAssignStrategyValidVariant(t *testing.T) {
	for i := 0; i < 1000; i++ {
		got := AssignStrategy(fmt.Sprintf("session-%d", i))
		if got != models.StrategyPopularity && got != models.StrategySimilarity {
			t.Fatalf("AssignStrategy returned unknown variant %q", got)
		}
	}
}

func TestAssignStrategyBothBucketsReachable(t *testing.T) {
	seen := map[models.Strategy]int{}
	for i := 0; i < 1000; i++ {
		seen[AssignStrategy(fmt.Sprintf("session-%d", i))]++
	}
	if seen[models.StrategyPopularity] == 0 || seen[models.StrategySimilarity] == 0 {
		t.Fatalf("expected both variants across 1000 sessions, got %v", seen)
	}
}
