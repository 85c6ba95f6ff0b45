// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package voice

import (
	"regexp"
	"strings"
)

// correction maps variant spellings (as heard by a recognizer) onto one
// canonical term. Variants are matched as whole words, case-insensitively.
type correction struct {
	canonical string
	variants  []string
}

// corrections is the misheard-term substitution table. Genre and time
// vocabulary first, then the cast names the demo catalog knows about.
// Entries apply in order, so a variant shared with a later canonical
// term resolves to the earlier one ("thriller" rewrites to "action"
// before the thriller entry runs).
var corrections = []correction{
	{"movie", []string{"film", "picture", "flick"}},
	{"movies", []string{"films", "pictures", "flicks"}},
	{"comedy", []string{"funny", "humor", "humorous"}},
	{"drama", []string{"serious", "emotional"}},
	{"action", []string{"adventure", "thriller"}},
	{"romance", []string{"romantic", "love"}},
	{"horror", []string{"scary", "frightening"}},
	{"sci-fi", []string{"science fiction", "sci fi"}},
	{"fantasy", []string{"magical", "wizard"}},
	{"crime", []string{"criminal", "gangster"}},
	{"thriller", []string{"suspense", "mystery"}},
	{"biography", []string{"biographical"}},
	{"history", []string{"historical"}},
	{"family", []string{"kids", "children"}},

	{"minutes", []string{"mins", "min"}},
	{"hours", []string{"hrs", "hr"}},
	{"short", []string{"shorter", "brief"}},
	{"long", []string{"longer", "extended"}},
	{"under", []string{"below", "less than"}},
	{"over", []string{"above", "more than"}},

	{"tom hanks", []string{"tom hank", "thomas hanks"}},
	{"leonardo dicaprio", []string{"leo dicaprio", "leonardo de caprio"}},
	{"robert de niro", []string{"bobby de niro", "robert deniro"}},
	{"brad pitt", []string{"bradley pitt", "brad pit"}},
	{"matt damon", []string{"matthew damon"}},
	{"julia roberts", []string{"julie roberts"}},
	{"meryl streep", []string{"merrill streep"}},
	{"jodie foster", []string{"jody foster"}},
	{"mark hamill", []string{"mark hammill"}},
	{"samuel l. jackson", []string{"sam jackson", "samuel jackson"}},
	{"edward norton", []string{"ed norton"}},
	{"carrie-anne moss", []string{"carrie anne moss"}},
}

// carrierPatterns is the ordered list of carrier phrases. The first one
// that matches decides the extracted payload; when none match, the full
// cleaned text is kept.
var carrierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`find\s+(.+)`),
	regexp.MustCompile(`show\s+me\s+(.+)`),
	regexp.MustCompile(`i\s+want\s+(.+)`),
	regexp.MustCompile(`look\s+for\s+(.+)`),
	regexp.MustCompile(`search\s+for\s+(.+)`),
	regexp.MustCompile(`give\s+me\s+(.+)`),
	regexp.MustCompile(`recommend\s+(.+)`),
	regexp.MustCompile(`suggest\s+(.+)`),
	regexp.MustCompile(`what\s+(.+)`),
	regexp.MustCompile(`can\s+you\s+find\s+(.+)`),
	regexp.MustCompile(`help\s+me\s+find\s+(.+)`),
	regexp.MustCompile(`i\s+am\s+looking\s+for\s+(.+)`),
	regexp.MustCompile(`i\s+need\s+(.+)`),
	regexp.MustCompile(`do\s+you\s+have\s+(.+)`),
	regexp.MustCompile(`are\s+there\s+any\s+(.+)`),
}

var (
	fillerRe     = regexp.MustCompile(`\b(um|uh|er|ah|like|you know|i mean)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[^\w\s]`)
)

// suggestionStarters seeds the voice suggestion endpoint.
var suggestionStarters = []string{
	"find comedy movies",
	"show me action films",
	"recommend romantic movies",
	"look for horror films",
	"search for sci-fi movies",
	"give me drama movies",
	"suggest thriller movies",
	"what comedy movies are there",
	"can you find action movies",
	"help me find romantic movies",
	"i am looking for horror movies",
	"i need comedy movies",
	"do you have action movies",
	"are there any romantic movies",
}

// Processor normalizes transcribed voice queries. It is stateless and
// safe for concurrent use.
type Processor struct {
	// variantRes holds one compiled whole-word regexp per correction
	// variant, in table order.
	variantRes []variantPattern
}

type variantPattern struct {
	re        *regexp.Regexp
	canonical string
}

// NewProcessor creates a voice processor with the correction table
// compiled to whole-word patterns.
func NewProcessor() *Processor {
	patterns := make([]variantPattern, 0, len(corrections)*2)
	for _, c := range corrections {
		for _, v := range c.variants {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(v) + `\b`)
			patterns = append(patterns, variantPattern{re: re, canonical: c.canonical})
		}
	}
	return &Processor{variantRes: patterns}
}

// Result carries each stage of the voice pipeline, for debug surfaces
// that want to show the intermediate transcripts.
type Result struct {
	OriginalText   string `json:"original_text"`
	CleanedText    string `json:"cleaned_text"`
	QueryContent   string `json:"query_content"`
	CorrectedQuery string `json:"corrected_query"`
}

// Normalize runs the full voice pipeline in fixed order: clean the raw
// text, extract the query payload from a carrier phrase, then apply the
// misheard-term corrections. The result is ordinary query text.
func (p *Processor) Normalize(raw string) string {
	return p.Process(raw).CorrectedQuery
}

// Process runs the pipeline and returns every intermediate stage.
func (p *Processor) Process(raw string) Result {
	cleaned := Clean(raw)
	payload := extractPayload(cleaned)
	return Result{
		OriginalText:   raw,
		CleanedText:    cleaned,
		QueryContent:   payload,
		CorrectedQuery: p.correct(payload),
	}
}

// Clean lowercases and trims the text, strips filler disfluencies as
// whole words, collapses repeated whitespace, and replaces punctuation
// with spaces.
func Clean(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = fillerRe.ReplaceAllString(t, "")
	t = punctRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// extractPayload returns the capture of the first matching carrier
// pattern, or the full text when no carrier phrase matches.
func extractPayload(text string) string {
	for _, re := range carrierPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return text
}

// correct applies the whole-word substitution table.
func (p *Processor) correct(text string) string {
	out := text
	for _, vp := range p.variantRes {
		out = vp.re.ReplaceAllString(out, vp.canonical)
	}
	return out
}

// Suggestions returns canned voice query starters matching the partial
// input; with empty input the first five starters are returned. At most
// ten suggestions are returned.
func (p *Processor) Suggestions(partial string) []string {
	if partial == "" {
		return append([]string{}, suggestionStarters[:5]...)
	}
	lower := strings.ToLower(partial)
	out := []string{}
	for _, s := range suggestionStarters {
		if strings.Contains(s, lower) {
			out = append(out, s)
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}
