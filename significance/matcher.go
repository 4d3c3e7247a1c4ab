package significance

import (
	"regexp"
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/company-monitor/domain"
)

// contextWindow is the number of characters of surrounding text captured
// on each side of a match.
const contextWindow = 50

// Matcher scans content for one lexicon's phrases. An Aho-Corasick
// automaton over the whole lexicon screens the content in a single pass;
// only phrases the automaton saw get a word-boundary positional scan.
type Matcher struct {
	name      string
	entries   []matchEntry
	prefilter *ahocorasick.Matcher
}

type matchEntry struct {
	keyword  string
	category string
	pattern  *regexp.Regexp
}

// NewMatcher compiles a matcher for a lexicon. Categories are ordered
// alphabetically so scan output is deterministic.
func NewMatcher(name string, lexicon Lexicon) *Matcher {
	categories := make([]string, 0, len(lexicon))
	for category := range lexicon {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	m := &Matcher{name: name}
	phrases := make([]string, 0, len(categories))
	for _, category := range categories {
		for _, keyword := range lexicon[category] {
			m.entries = append(m.entries, matchEntry{
				keyword:  keyword,
				category: category,
				pattern:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`),
			})
			phrases = append(phrases, keyword)
		}
	}

	if len(phrases) > 0 {
		m.prefilter = ahocorasick.NewStringMatcher(phrases)
	}
	return m
}

// Name returns the lexicon name the matcher was built from.
func (m *Matcher) Name() string {
	return m.name
}

// Find returns every word-boundary match of the lexicon in content, each
// with its byte offset and up to contextWindow characters of trimmed
// context on either side.
func (m *Matcher) Find(content string) []domain.KeywordMatch {
	if content == "" || m.prefilter == nil {
		return nil
	}

	// One automaton pass over folded text decides which phrases get a
	// positional scan. Substring hits are a superset of word-boundary
	// hits, so nothing is missed.
	hits := m.prefilter.Match([]byte(normalizeForScan(content)))
	if len(hits) == 0 {
		return nil
	}
	candidate := make(map[int]bool, len(hits))
	for _, idx := range hits {
		candidate[idx] = true
	}

	var matches []domain.KeywordMatch
	for i, entry := range m.entries {
		if !candidate[i] {
			continue
		}
		for _, span := range entry.pattern.FindAllStringIndex(content, -1) {
			start, end := span[0], span[1]
			matches = append(matches, domain.KeywordMatch{
				Keyword:       entry.keyword,
				Category:      entry.category,
				Position:      start,
				ContextBefore: contextBefore(content, start),
				ContextAfter:  contextAfter(content, end),
			})
		}
	}
	return matches
}

// FindMatches scans content against an arbitrary lexicon. Callers doing
// repeated scans should build a Matcher once instead.
func FindMatches(content string, lexicon Lexicon) []domain.KeywordMatch {
	return NewMatcher("adhoc", lexicon).Find(content)
}

func contextBefore(content string, pos int) string {
	start := pos - contextWindow
	if start < 0 {
		start = 0
	}
	return capRunes(strings.TrimSpace(content[start:pos]), contextWindow)
}

func contextAfter(content string, end int) string {
	stop := end + contextWindow
	if stop > len(content) {
		stop = len(content)
	}
	return capRunes(strings.TrimSpace(content[end:stop]), contextWindow)
}

func capRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Shared matchers for the built-in lexicons, compiled once at init and
// never mutated.
var (
	positiveMatcher      = NewMatcher("positive", PositiveKeywords)
	negativeMatcher      = NewMatcher("negative", NegativeKeywords)
	insignificantMatcher = NewMatcher("insignificant", InsignificantPatterns)
)
