// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package recommend

import (
	"math"
	"testing"
)

func TestTermsFiltersStopWordsAndShortTokens(t *testing.T) {
	got := terms("the hacker in a digital world")
	want := []string{"hacker", "digital", "world", "hacker digital", "digital world"}
	if len(got) != len(want) {
		t.Fatalf("terms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("terms()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildIndexVectorsAreNormalized(t *testing.T) {
	docs := []string{
		"space adventure among the stars",
		"crime drama in the city",
		"romantic comedy about love",
	}
	idx := buildIndex(docs)
	for i, vec := range idx.vectors {
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("doc %d: squared norm = %f, want 1", i, norm)
		}
	}
}

func TestTransformSelfSimilarity(t *testing.T) {
	docs := []string{
		"space adventure among the stars",
		"crime drama in the city",
	}
	idx := buildIndex(docs)

	self := cosine(idx.transform(docs[0]), idx.vectors[0])
	cross := cosine(idx.transform(docs[0]), idx.vectors[1])
	if self <= cross {
		t.Fatalf("self similarity %f should exceed cross similarity %f", self, cross)
	}
	if math.Abs(self-1) > 1e-9 {
		t.Fatalf("self similarity = %f, want 1", self)
	}
}

func TestTransformUnknownTermsIgnored(t *testing.T) {
	idx := buildIndex([]string{"space adventure"})
	vec := idx.transform("zebra quantum")
	if len(vec) != 0 {
		t.Fatalf("expected empty vector for out-of-vocabulary query, got %v", vec)
	}
}

func TestCosineEmptyVectors(t *testing.T) {
	if got := cosine(sparseVec{}, sparseVec{0: 1}); got != 0 {
		t.Fatalf("cosine with empty vector = %f, want 0", got)
	}
}

func TestBuildIndexVocabularyCap(t *testing.T) {
	idx := buildIndex([]string{"alpha beta gamma delta"})
	if len(idx.vocab) > maxVocabulary {
		t.Fatalf("vocabulary size %d exceeds cap %d", len(idx.vocab), maxVocabulary)
	}
	if len(idx.idf) != len(idx.vocab) {
		t.Fatalf("idf length %d != vocab size %d", len(idx.idf), len(idx.vocab))
	}
}
