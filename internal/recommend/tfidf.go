// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package recommend

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabulary caps the lexical index at the highest-frequency terms.
const maxVocabulary = 1000

// tokenRe matches word tokens of two or more characters, mirroring the
// tokenization the index was originally tuned against.
var tokenRe = regexp.MustCompile(`\w\w+`)

// englishStopWords are excluded from the vocabulary. The list covers the
// common function words; domain nouns stay in (they carry signal for
// title/overview matching).
var englishStopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {}, "had": {},
	"has": {}, "have": {}, "having": {}, "he": {}, "her": {}, "here": {},
	"hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {}, "just": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"myself": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {},
	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {}, "under": {},
	"until": {}, "up": {}, "very": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "why": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// lexicalIndex holds precomputed TF-IDF vectors over unigrams and bigrams
// for every catalog document. It is built once and read-only afterwards,
// so concurrent lookups need no synchronization.
type lexicalIndex struct {
	vocab   map[string]int // term -> vocabulary slot
	idf     []float64      // per-slot inverse document frequency
	vectors []sparseVec    // per-document L2-normalized TF-IDF vectors
}

// sparseVec is a sparse vector keyed by vocabulary slot.
type sparseVec map[int]float64

// terms tokenizes a document into stop-word-filtered unigrams plus their
// adjacent bigrams.
func terms(doc string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(doc), -1)
	unigrams := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		unigrams = append(unigrams, tok)
	}

	out := make([]string, 0, len(unigrams)*2)
	out = append(out, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		out = append(out, unigrams[i]+" "+unigrams[i+1])
	}
	return out
}

// buildIndex vectorizes the documents. The vocabulary keeps at most
// maxVocabulary terms, selected by total corpus frequency with
// alphabetical tie-breaking so the selection is deterministic.
func buildIndex(docs []string) *lexicalIndex {
	counts := make([]map[string]int, len(docs))
	corpusFreq := map[string]int{}
	docFreq := map[string]int{}

	for i, doc := range docs {
		tc := map[string]int{}
		for _, term := range terms(doc) {
			tc[term]++
		}
		counts[i] = tc
		for term, c := range tc {
			corpusFreq[term] += c
			docFreq[term]++
		}
	}

	type termCount struct {
		term  string
		count int
	}
	ranked := make([]termCount, 0, len(corpusFreq))
	for term, c := range corpusFreq {
		ranked = append(ranked, termCount{term, c})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].count != ranked[b].count {
			return ranked[a].count > ranked[b].count
		}
		return ranked[a].term < ranked[b].term
	})
	if len(ranked) > maxVocabulary {
		ranked = ranked[:maxVocabulary]
	}

	idx := &lexicalIndex{
		vocab: make(map[string]int, len(ranked)),
		idf:   make([]float64, len(ranked)),
	}
	n := float64(len(docs))
	for slot, tc := range ranked {
		idx.vocab[tc.term] = slot
		// Smoothed IDF keeps unseen-term weights finite.
		idx.idf[slot] = math.Log((1+n)/(1+float64(docFreq[tc.term]))) + 1
	}

	idx.vectors = make([]sparseVec, len(docs))
	for i, tc := range counts {
		idx.vectors[i] = idx.vectorize(tc)
	}
	return idx
}

// transform projects arbitrary query text into the index vector space.
// Terms outside the vocabulary are ignored.
func (idx *lexicalIndex) transform(doc string) sparseVec {
	tc := map[string]int{}
	for _, term := range terms(doc) {
		tc[term]++
	}
	return idx.vectorize(tc)
}

// vectorize turns raw term counts into an L2-normalized TF-IDF vector.
func (idx *lexicalIndex) vectorize(termCounts map[string]int) sparseVec {
	vec := sparseVec{}
	var norm float64
	for term, count := range termCounts {
		slot, ok := idx.vocab[term]
		if !ok {
			continue
		}
		w := float64(count) * idx.idf[slot]
		vec[slot] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for slot, w := range vec {
			vec[slot] = w / norm
		}
	}
	return vec
}

// cosine returns the cosine similarity of two normalized sparse vectors.
func cosine(a, b sparseVec) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for slot, w := range a {
		dot += w * b[slot]
	}
	return dot
}
