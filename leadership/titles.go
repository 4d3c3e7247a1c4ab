// Package leadership detects leadership titles, diffs roster snapshots,
// and classifies the severity of executive changes.
package leadership

import (
	"regexp"
	"sort"
	"strings"
)

// leadershipTitleRanks lists known titles with seniority rank (lower =
// more senior), in lookup-priority order. Extraction tie-breaks
// equal-length titles by this order, so "cto" is preferred over "coo".
var leadershipTitleRanks = []struct {
	title string
	rank  int
}{
	{"ceo", 1},
	{"chief executive officer", 1},
	{"founder", 1},
	{"co-founder", 2},
	{"cofounder", 2},
	{"co founder", 2},
	{"president", 2},
	{"cto", 3},
	{"chief technology officer", 3},
	{"coo", 3},
	{"chief operating officer", 3},
	{"cfo", 3},
	{"chief financial officer", 3},
	{"cmo", 4},
	{"chief marketing officer", 4},
	{"chief people officer", 4},
	{"chief product officer", 4},
	{"chief revenue officer", 4},
	{"chief strategy officer", 4},
	{"managing director", 4},
	{"general manager", 5},
	{"vp of engineering", 5},
	{"vp engineering", 5},
	{"vice president of engineering", 5},
	{"vp of product", 5},
	{"vp product", 5},
	{"vice president", 5},
}

// LeadershipTitles maps known titles to seniority rank. Used for rank
// lookup and for separating leadership from non-leadership titles.
var LeadershipTitles = buildTitleRanks()

func buildTitleRanks() map[string]int {
	ranks := make(map[string]int, len(leadershipTitleRanks))
	for _, tr := range leadershipTitleRanks {
		ranks[tr.title] = tr.rank
	}
	return ranks
}

const defaultRank = 99

// Generic patterns covering titles the table does not enumerate.
var (
	chiefOfficerPattern = regexp.MustCompile(`(?i)\bchief\s+\w+\s+officer\b`)
	vpPattern           = regexp.MustCompile(`(?i)\b(?:vp|vice\s+president)\b`)
)

// titlePatterns are word-boundary regexps per known title, longest phrase
// first so extraction prefers the most specific form. Equal-length titles
// keep their leadershipTitleRanks order.
var titlePatterns = buildTitlePatterns()

type titlePattern struct {
	title   string
	pattern *regexp.Regexp
}

func buildTitlePatterns() []titlePattern {
	titles := make([]string, 0, len(leadershipTitleRanks))
	for _, tr := range leadershipTitleRanks {
		titles = append(titles, tr.title)
	}
	sort.SliceStable(titles, func(i, j int) bool {
		return len(titles[i]) > len(titles[j])
	})

	patterns := make([]titlePattern, 0, len(titles))
	for _, title := range titles {
		patterns = append(patterns, titlePattern{
			title:   title,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(title) + `\b`),
		})
	}
	return patterns
}

// IsLeadershipTitle reports whether a title string contains a leadership
// role. Checks exact table entries, word-boundary hits inside longer
// strings (e.g. "CEO at Acme Corp"), and the generic Chief-X-Officer and
// VP patterns.
func IsLeadershipTitle(title string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(title))

	if _, ok := LeadershipTitles[lower]; ok {
		return true
	}
	for _, tp := range titlePatterns {
		if tp.pattern.MatchString(lower) {
			return true
		}
	}
	if chiefOfficerPattern.MatchString(lower) {
		return true
	}
	return vpPattern.MatchString(lower)
}

// ExtractLeadershipTitle returns the first leadership title found in raw
// text, preserving the original casing of the matched span. Returns
// ("", false) when no leadership title is present.
func ExtractLeadershipTitle(rawText string) (string, bool) {
	if rawText == "" {
		return "", false
	}

	for _, tp := range titlePatterns {
		if loc := tp.pattern.FindStringIndex(rawText); loc != nil {
			return rawText[loc[0]:loc[1]], true
		}
	}
	if match := chiefOfficerPattern.FindString(rawText); match != "" {
		return match, true
	}
	if match := vpPattern.FindString(rawText); match != "" {
		return match, true
	}
	return "", false
}

// normalizationMap converts long-form titles to canonical abbreviations.
var normalizationMap = map[string]string{
	"chief executive officer":  "CEO",
	"chief technology officer": "CTO",
	"chief operating officer":  "COO",
	"chief financial officer":  "CFO",
	"chief marketing officer":  "CMO",
	"chief people officer":     "CPO",
	"chief product officer":    "CPO",
	"chief revenue officer":    "CRO",
	"chief strategy officer":   "CSO",
	"cofounder":                "Co-Founder",
	"co founder":               "Co-Founder",
	"co-founder":               "Co-Founder",
}

var knownAbbreviations = map[string]bool{
	"CEO": true, "CTO": true, "COO": true, "CFO": true,
	"CMO": true, "CPO": true, "CRO": true, "CSO": true,
}

// NormalizeTitle converts a leadership title to its canonical form
// ("Chief Executive Officer" -> "CEO") and fixes casing of known titles.
func NormalizeTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	lower := strings.ToLower(trimmed)

	if canonical, ok := normalizationMap[lower]; ok {
		return canonical
	}
	if upper := strings.ToUpper(trimmed); knownAbbreviations[upper] {
		return upper
	}
	if _, ok := LeadershipTitles[lower]; ok {
		return titleCase(trimmed)
	}
	return trimmed
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RankTitle returns the seniority rank for a title; unknown titles rank
// last (99).
func RankTitle(title string) int {
	lower := strings.ToLower(strings.TrimSpace(title))
	if rank, ok := LeadershipTitles[lower]; ok {
		return rank
	}
	if chiefOfficerPattern.MatchString(lower) {
		return 4
	}
	if vpPattern.MatchString(lower) {
		return 5
	}
	return defaultRank
}

// Role categories returned by ClassifyRole.
const (
	RoleCEO            = "ceo"
	RoleFounder        = "founder"
	RoleCoFounder      = "co_founder"
	RoleCTO            = "cto"
	RoleCOO            = "coo"
	RolePresident      = "president"
	RoleCFO            = "cfo"
	RoleOtherExecutive = "other_executive"
	RoleOther          = "other"
)

// ClassifyRole maps a title into a standardized role category.
func ClassifyRole(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	switch lower {
	case "ceo", "chief executive officer":
		return RoleCEO
	case "founder":
		return RoleFounder
	case "co-founder", "cofounder", "co founder":
		return RoleCoFounder
	case "cto", "chief technology officer":
		return RoleCTO
	case "coo", "chief operating officer":
		return RoleCOO
	case "president":
		return RolePresident
	case "cfo", "chief financial officer":
		return RoleCFO
	}

	if chiefOfficerPattern.MatchString(lower) || vpPattern.MatchString(lower) {
		return RoleOtherExecutive
	}
	if _, ok := LeadershipTitles[lower]; ok {
		return RoleOtherExecutive
	}
	return RoleOther
}
