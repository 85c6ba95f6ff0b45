// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package recommend

import (
	"hash/fnv"

	"github.com/pcdlite/pcdlite/internal/models"
)

// AssignStrategy deterministically buckets a session into one of the two
// ranking strategies. The assignment is a pure function of the session
// identifier (FNV-1a 64-bit, reduced modulo two): no randomness, time, or
// global counters, so the same identifier always yields the same bucket,
// within a process and across restarts.
func AssignStrategy(sessionID string) models.Strategy {
	h := fnv.New64a()
	// Hash.Write never returns an error.
	_, _ = h.Write([]byte(sessionID))
	if h.Sum64()%2 == 0 {
		return models.StrategyPopularity
	}
	return models.StrategySimilarity
}
