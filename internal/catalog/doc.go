// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package catalog loads the movie catalog and exposes it as an immutable
// in-memory snapshot.
//
// The catalog is read from a CSV file at startup. If the file does not
// exist, the embedded sample catalog is written there first so a fresh
// checkout can serve requests without external data. After construction
// the snapshot is never mutated, so concurrent readers need no locking.
//
// Search implements the shared attribute pre-filter used by both ranking
// strategies: for every present filter field at least one of the item's
// corresponding attributes must match. Absent fields impose no constraint.
package catalog
