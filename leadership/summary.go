package leadership

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/company-monitor/domain"
)

// Summary confidence levels.
const (
	confidenceCritical  = 0.95
	confidenceNotable   = 0.80
	confidenceNoChanges = 0.75
)

// Summarize rolls a list of leadership changes up into one significance
// result: any critical change is significant at 0.95, else any notable
// change is significant at 0.80, else insignificant. Sentiment reflects
// whether the changes are departures, arrivals, or both.
func Summarize(changes []domain.LeadershipChange) domain.SignificanceResult {
	if len(changes) == 0 {
		return domain.SignificanceResult{
			Classification: domain.ClassificationInsignificant,
			Sentiment:      domain.SentimentNeutral,
			Confidence:     confidenceNoChanges,
			Notes:          "No leadership changes detected",
		}
	}

	var critical, notable int
	var hasDepartures, hasArrivals bool
	keywords := make([]string, 0, len(changes))
	evidence := make([]string, 0, len(changes))
	var categories []string
	seenSeverity := make(map[domain.Severity]bool)

	for _, change := range changes {
		switch change.Severity {
		case domain.SeverityCritical:
			critical++
		case domain.SeverityNotable:
			notable++
		}
		if strings.HasSuffix(string(change.Type), "_departure") {
			hasDepartures = true
		}
		if strings.HasPrefix(string(change.Type), "new_") {
			hasArrivals = true
		}
		keywords = append(keywords, string(change.Type))
		if !seenSeverity[change.Severity] {
			seenSeverity[change.Severity] = true
			categories = append(categories, string(change.Severity))
		}
		name := change.PersonName
		if name == "" {
			name = "Unknown"
		}
		evidence = append(evidence, fmt.Sprintf("%s (%s) - %s", name, change.Title, change.Type))
	}

	sentiment := domain.SentimentNeutral
	switch {
	case hasDepartures && hasArrivals:
		sentiment = domain.SentimentMixed
	case hasDepartures:
		sentiment = domain.SentimentNegative
	case hasArrivals:
		sentiment = domain.SentimentPositive
	}

	switch {
	case critical > 0:
		return domain.SignificanceResult{
			Classification:    domain.ClassificationSignificant,
			Sentiment:         sentiment,
			Confidence:        confidenceCritical,
			MatchedKeywords:   keywords,
			MatchedCategories: categories,
			Notes:             fmt.Sprintf("%d critical leadership change(s) detected", critical),
			EvidenceSnippets:  evidence,
		}
	case notable > 0:
		return domain.SignificanceResult{
			Classification:    domain.ClassificationSignificant,
			Sentiment:         sentiment,
			Confidence:        confidenceNotable,
			MatchedKeywords:   keywords,
			MatchedCategories: categories,
			Notes:             fmt.Sprintf("%d notable leadership change(s) detected", notable),
			EvidenceSnippets:  evidence,
		}
	default:
		return domain.SignificanceResult{
			Classification: domain.ClassificationInsignificant,
			Sentiment:      domain.SentimentNeutral,
			Confidence:     confidenceNoChanges,
			Notes:          "No significant leadership changes",
		}
	}
}
