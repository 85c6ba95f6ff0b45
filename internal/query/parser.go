// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pcdlite/pcdlite/internal/models"
)

// triggerEntry maps one canonical name to the substrings that select it.
// Entries are held in slices rather than maps so extraction order matches
// table order deterministically.
type triggerEntry struct {
	canonical string
	triggers  []string
}

// genreTable maps canonical genre names to trigger substrings. Any trigger
// occurring anywhere in the lowercased query selects the genre.
var genreTable = []triggerEntry{
	{"Comedy", []string{"comedy", "funny", "humor", "humorous", "laugh"}},
	{"Drama", []string{"drama", "serious", "emotional", "touching"}},
	{"Thriller", []string{"thriller", "suspense", "mystery", "suspenseful"}},
	{"Action", []string{"action", "adventure", "exciting", "fast-paced"}},
	{"Romance", []string{"romance", "romantic", "love", "romantic comedy", "rom-com"}},
	{"Horror", []string{"horror", "scary", "frightening", "terrifying"}},
	{"Sci-Fi", []string{"sci-fi", "science fiction", "futuristic", "space", "alien"}},
	{"Fantasy", []string{"fantasy", "magical", "wizard", "magic"}},
	{"Crime", []string{"crime", "criminal", "gangster", "mob", "detective"}},
	{"Biography", []string{"biography", "biographical", "true story", "real story"}},
	{"History", []string{"historical", "history", "period piece"}},
	{"Family", []string{"family", "kids", "children", "family-friendly"}},
}

// actorTable maps canonical display-cased names to variant spellings.
var actorTable = []triggerEntry{
	{"Tom Hanks", []string{"tom hanks", "thomas hanks"}},
	{"Leonardo DiCaprio", []string{"leonardo dicaprio", "leo dicaprio"}},
	{"Morgan Freeman", []string{"morgan freeman"}},
	{"Robert De Niro", []string{"robert de niro", "bobby de niro"}},
	{"Al Pacino", []string{"al pacino", "alfredo pacino"}},
	{"Brad Pitt", []string{"brad pitt", "bradley pitt"}},
	{"Matt Damon", []string{"matt damon", "matthew damon"}},
	{"Julia Roberts", []string{"julia roberts"}},
	{"Meryl Streep", []string{"meryl streep"}},
	{"Denzel Washington", []string{"denzel washington"}},
	{"Keanu Reeves", []string{"keanu reeves"}},
	{"Christian Bale", []string{"christian bale"}},
	{"Heath Ledger", []string{"heath ledger"}},
	{"Robin Williams", []string{"robin williams"}},
	{"Anthony Hopkins", []string{"anthony hopkins"}},
	{"Jodie Foster", []string{"jodie foster"}},
	{"Harrison Ford", []string{"harrison ford"}},
	{"Mark Hamill", []string{"mark hamill"}},
	{"Carrie Fisher", []string{"carrie fisher"}},
	{"Samuel L. Jackson", []string{"samuel l. jackson", "sam jackson"}},
	{"John Travolta", []string{"john travolta"}},
	{"Uma Thurman", []string{"uma thurman"}},
	{"Tim Robbins", []string{"tim robbins"}},
	{"Marlon Brando", []string{"marlon brando"}},
	{"James Caan", []string{"james caan"}},
	{"Edward Norton", []string{"edward norton"}},
	{"Helena Bonham Carter", []string{"helena bonham carter"}},
	{"Laurence Fishburne", []string{"laurence fishburne"}},
	{"Carrie-Anne Moss", []string{"carrie-anne moss"}},
	{"Ray Liotta", []string{"ray liotta"}},
	{"Joe Pesci", []string{"joe pesci"}},
	{"Scott Glenn", []string{"scott glenn"}},
	{"Viggo Mortensen", []string{"viggo mortensen"}},
	{"Ian McKellen", []string{"ian mckellen"}},
	{"Elijah Wood", []string{"elijah wood"}},
	{"Orlando Bloom", []string{"orlando bloom"}},
	{"Marion Cotillard", []string{"marion cotillard"}},
	{"Tom Hardy", []string{"tom hardy"}},
	{"Jack Nicholson", []string{"jack nicholson"}},
	{"Louise Fletcher", []string{"louise fletcher"}},
	{"Ben Affleck", []string{"ben affleck"}},
	{"Kevin Spacey", []string{"kevin spacey"}},
	{"Gabriel Byrne", []string{"gabriel byrne"}},
	{"Chazz Palminteri", []string{"chazz palminteri"}},
}

// vibeTable maps mood tags to trigger substrings. At most one vibe is
// extracted per query: the first table entry with a matching trigger.
var vibeTable = []triggerEntry{
	{"funny", []string{"funny", "hilarious", "comedy", "laugh", "humor"}},
	{"serious", []string{"serious", "dramatic", "intense", "heavy", "emotional"}},
	{"romantic", []string{"romantic", "love", "romance", "sweet", "cute"}},
	{"exciting", []string{"exciting", "thrilling", "action-packed", "adrenaline"}},
	{"scary", []string{"scary", "frightening", "terrifying", "horror"}},
	{"thought-provoking", []string{"thought-provoking", "deep", "philosophical", "meaningful"}},
	{"light", []string{"light", "easy", "fun", "entertaining", "feel-good"}},
	{"dark", []string{"dark", "gritty", "disturbing", "intense"}},
}

// runtimePattern is one entry in the ordered runtime pattern list. The
// hours flag marks patterns whose captured value is in hours.
type runtimePattern struct {
	re    *regexp.Regexp
	hours bool
}

// runtimePatterns is evaluated in order; the first matching pattern wins
// and later patterns are not consulted.
var runtimePatterns = []runtimePattern{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*minutes?`), false},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*mins?`), false},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*hours?`), true},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*hrs?`), true},
	{regexp.MustCompile(`short(?:er)?\s*(?:than\s*)?(\d+(?:\.\d+)?)\s*minutes?`), false},
	{regexp.MustCompile(`long(?:er)?\s*(?:than\s*)?(\d+(?:\.\d+)?)\s*minutes?`), false},
	{regexp.MustCompile(`under\s*(\d+(?:\.\d+)?)\s*minutes?`), false},
	{regexp.MustCompile(`over\s*(\d+(?:\.\d+)?)\s*hours?`), true},
	{regexp.MustCompile(`less\s*than\s*(\d+(?:\.\d+)?)\s*minutes?`), false},
	{regexp.MustCompile(`more\s*than\s*(\d+(?:\.\d+)?)\s*hours?`), true},
	{regexp.MustCompile(`short(?:er)?\s*(?:than\s*)?(\d+(?:\.\d+)?)`), false},
	{regexp.MustCompile(`under\s*(\d+(?:\.\d+)?)`), false},
}

// yearPatterns is evaluated in full; every match of every pattern is
// applied in order, so the last pattern to match wins on overlap.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})`),
	regexp.MustCompile(`from\s*(\d{4})`),
	regexp.MustCompile(`after\s*(\d{4})`),
	regexp.MustCompile(`since\s*(\d{4})`),
	regexp.MustCompile(`before\s*(\d{4})`),
	regexp.MustCompile(`until\s*(\d{4})`),
	regexp.MustCompile(`(\d{4})s`),
	regexp.MustCompile(`(\d{4})s?`),
}

// stopWords are removed during keyword extraction, together with generic
// catalog nouns that carry no filtering signal.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "find": {}, "show": {}, "me": {},
	"movies": {}, "movie": {}, "film": {}, "films": {},
}

var wordRe = regexp.MustCompile(`\w+`)

// Parser extracts structured filters from natural-language queries. It is
// stateless and safe for concurrent use.
type Parser struct{}

// NewParser creates a query parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse interprets the query text into structured filters. It is a pure
// function of its input; unrecognized terms simply fail to match and an
// empty query yields all-empty filters. The queryType is accepted for
// interface symmetry; voice queries must be run through the voice
// normalizer before calling Parse.
func (p *Parser) Parse(text string, _ models.QueryType) models.ParsedFilters {
	q := strings.ToLower(strings.TrimSpace(text))

	filters := models.ParsedFilters{
		Genres:   extractByTriggers(q, genreTable),
		Actors:   extractByTriggers(q, actorTable),
		Keywords: extractKeywords(q),
		Vibe:     extractVibe(q),
	}
	filters.RuntimeMin, filters.RuntimeMax = extractRuntime(q)
	filters.YearMin, filters.YearMax = extractYear(q)
	return filters
}

// extractByTriggers returns the canonical names whose triggers occur as
// substrings of the query, in table order.
func extractByTriggers(q string, table []triggerEntry) []string {
	out := []string{}
	for _, entry := range table {
		for _, trigger := range entry.triggers {
			if strings.Contains(q, trigger) {
				out = append(out, entry.canonical)
				break
			}
		}
	}
	return out
}

// extractVibe returns the first vibe tag whose triggers match, or "".
func extractVibe(q string) string {
	for _, entry := range vibeTable {
		for _, trigger := range entry.triggers {
			if strings.Contains(q, trigger) {
				return entry.canonical
			}
		}
	}
	return ""
}

// extractRuntime scans the ordered runtime pattern list and applies the
// first match. Directionality comes from qualifier words in the query:
// short/under/less than selects the maximum, long/over/more than the
// minimum, and an unqualified value defaults to the maximum. At most one
// bound is ever set.
func extractRuntime(q string) (minRuntime, maxRuntime *int) {
	for _, p := range runtimePatterns {
		m := p.re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if p.hours {
			value *= 60
		}
		minutes := int(value)

		switch {
		case containsAny(q, "short", "under", "less than"):
			return nil, &minutes
		case containsAny(q, "long", "over", "more than"):
			return &minutes, nil
		default:
			return nil, &minutes
		}
	}
	return nil, nil
}

// extractYear evaluates every year pattern in order, so later patterns
// overwrite bounds set by earlier ones (last-pattern-wins). A match whose
// full text carries a trailing "s" is a decade and sets both bounds;
// from/after/since set the minimum only; before/until set the maximum
// only; a bare year sets both bounds to that year.
func extractYear(q string) (minYear, maxYear *int) {
	var lo, hi *int
	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(q, -1) {
			year, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			switch {
			case strings.HasSuffix(m[0], "s"):
				start, end := year, year+9
				lo, hi = &start, &end
			case containsAny(q, "from", "after", "since"):
				y := year
				lo = &y
			case containsAny(q, "before", "until"):
				y := year
				hi = &y
			default:
				y1, y2 := year, year
				lo, hi = &y1, &y2
			}
		}
	}
	return lo, hi
}

// extractKeywords tokenizes on word boundaries, drops stop words, and
// keeps tokens longer than two characters. No stemming or deduplication.
func extractKeywords(q string) []string {
	words := wordRe.FindAllString(q, -1)
	out := []string{}
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// containsAny reports whether any of the needles occurs in s.
func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
