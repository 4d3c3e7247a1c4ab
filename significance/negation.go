package significance

import (
	"strings"

	"github.com/jonesrussell/company-monitor/domain"
)

// Negation windows are asymmetric on purpose: prefix negation words sit
// close to the keyword ("no funding"), suffix patterns trail further
// ("funding status: none").
const (
	negationPrefixWindow = 20
	negationSuffixWindow = 30
)

// ApplyNegation marks matches preceded by a negation word within the
// prefix window, or followed by a negation suffix pattern within the
// suffix window. Matches are annotated in place.
func ApplyNegation(matches []domain.KeywordMatch, content string) {
	lower := strings.ToLower(content)
	for i := range matches {
		m := &matches[i]

		start := m.Position - negationPrefixWindow
		if start < 0 {
			start = 0
		}
		prefix := strings.TrimSpace(lower[start:m.Position])
		for _, word := range NegationWords {
			if strings.HasSuffix(prefix, word) || strings.Contains(" "+prefix+" ", " "+word+" ") {
				m.IsNegated = true
				break
			}
		}
		if m.IsNegated {
			continue
		}

		end := m.Position + len(m.Keyword)
		if end > len(lower) {
			end = len(lower)
		}
		stop := end + negationSuffixWindow
		if stop > len(lower) {
			stop = len(lower)
		}
		suffix := strings.TrimSpace(lower[end:stop])
		for _, pattern := range negationSuffixPatterns {
			if strings.HasPrefix(suffix, pattern) {
				m.IsNegated = true
				break
			}
		}
	}
}

// ApplyFalsePositives marks matches whose span falls inside a known
// misleading phrase (e.g. "talent acquisition"). Only the first occurrence
// of each phrase in the content is considered, matching the behavior the
// confidence penalties were tuned against.
func ApplyFalsePositives(matches []domain.KeywordMatch, content string) {
	lower := strings.ToLower(content)
	for i := range matches {
		m := &matches[i]
		for _, phrase := range FalsePositivePhrases {
			idx := strings.Index(lower, phrase)
			if idx >= 0 && idx <= m.Position && m.Position < idx+len(phrase) {
				m.IsFalsePositive = true
				break
			}
		}
	}
}
