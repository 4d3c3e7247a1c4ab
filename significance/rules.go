package significance

import (
	"fmt"

	"github.com/jonesrussell/company-monitor/domain"
)

// Confidence constants for the rule table.
const (
	confidenceInsignificantOnly = 0.85
	confidenceNoKeywords        = 0.75
	confidenceSingleMajor       = 0.70
	confidenceSingleModerate    = 0.60
	confidenceSingleMinor       = 0.50
	multipleSignalsBase         = 0.80
	negativeBonusCap            = 0.15
	positiveBonusCap            = 0.10
	perKeywordBonus             = 0.05
	negatedPenalty              = 0.20
	falsePositivePenalty        = 0.30
	multipleSignalThreshold     = 2
)

// ruleContext carries the pre-computed inputs the rule table evaluates.
type ruleContext struct {
	magnitude         domain.ChangeMagnitude
	effectivePositive []domain.KeywordMatch
	effectiveNegative []domain.KeywordMatch
	insignificant     []domain.KeywordMatch
	penalty           float64  // confidence reduction from negated/false-positive raw matches
	keywords          []string // effective keywords, positive then negative
	categories        []string // deduplicated, first-seen order
	evidence          []string // "before [keyword] after" per effective match
}

func (rc *ruleContext) effectiveTotal() int {
	return len(rc.effectivePositive) + len(rc.effectiveNegative)
}

func (rc *ruleContext) sentiment() domain.Sentiment {
	return determineSentiment(len(rc.effectivePositive), len(rc.effectiveNegative))
}

// significanceRule pairs a predicate with its outcome. Rules are evaluated
// strictly in order; the first predicate that holds decides the result.
type significanceRule struct {
	name    string
	applies func(*ruleContext) bool
	outcome func(*ruleContext) domain.SignificanceResult
}

// significanceRules is the ordered decision table. Precedence is the
// contract here: multiple negative signals outrank multiple positive ones,
// and the insignificant-only rule requires magnitude exactly minor (any
// other magnitude falls through to the catch-all).
var significanceRules = []significanceRule{
	{
		name: "insignificant_only_minor",
		applies: func(rc *ruleContext) bool {
			return len(rc.insignificant) > 0 &&
				len(rc.effectivePositive) == 0 &&
				len(rc.effectiveNegative) == 0 &&
				rc.magnitude == domain.MagnitudeMinor
		},
		outcome: insignificantOnlyOutcome,
	},
	{
		name: "multiple_negative",
		applies: func(rc *ruleContext) bool {
			return len(rc.effectiveNegative) >= multipleSignalThreshold
		},
		outcome: multipleNegativeOutcome,
	},
	{
		name: "multiple_positive",
		applies: func(rc *ruleContext) bool {
			return len(rc.effectivePositive) >= multipleSignalThreshold
		},
		outcome: multiplePositiveOutcome,
	},
	{
		name: "single_keyword_major",
		applies: func(rc *ruleContext) bool {
			return rc.effectiveTotal() == 1 && rc.magnitude == domain.MagnitudeMajor
		},
		outcome: singleKeywordMajorOutcome,
	},
	{
		name: "single_keyword",
		applies: func(rc *ruleContext) bool {
			return rc.effectiveTotal() == 1
		},
		outcome: singleKeywordOutcome,
	},
	{
		name:    "no_keywords",
		applies: func(rc *ruleContext) bool { return true },
		outcome: noKeywordsOutcome,
	},
}

// Classify applies the ordered rule table to the keyword matches and
// change magnitude. Matches carrying negation or false-positive flags are
// excluded from the effective counts but still reduce confidence.
func Classify(
	positive, negative, insignificant []domain.KeywordMatch,
	magnitude domain.ChangeMagnitude,
) domain.SignificanceResult {
	rc := buildRuleContext(positive, negative, insignificant, magnitude)
	for _, rule := range significanceRules {
		if rule.applies(rc) {
			return rule.outcome(rc)
		}
	}
	return noKeywordsOutcome(rc) // table ends in a catch-all; not reached
}

func buildRuleContext(
	positive, negative, insignificant []domain.KeywordMatch,
	magnitude domain.ChangeMagnitude,
) *ruleContext {
	rc := &ruleContext{
		magnitude:     magnitude,
		insignificant: insignificant,
	}

	var negated, falsePositives int
	for _, m := range positive {
		if m.Effective() {
			rc.effectivePositive = append(rc.effectivePositive, m)
		}
		if m.IsNegated {
			negated++
		}
		if m.IsFalsePositive {
			falsePositives++
		}
	}
	for _, m := range negative {
		if m.Effective() {
			rc.effectiveNegative = append(rc.effectiveNegative, m)
		}
		if m.IsNegated {
			negated++
		}
		if m.IsFalsePositive {
			falsePositives++
		}
	}
	rc.penalty = float64(negated)*negatedPenalty + float64(falsePositives)*falsePositivePenalty

	seen := make(map[string]bool)
	for _, m := range append(rc.effectivePositive, rc.effectiveNegative...) {
		rc.keywords = append(rc.keywords, m.Keyword)
		if !seen[m.Category] {
			seen[m.Category] = true
			rc.categories = append(rc.categories, m.Category)
		}
		rc.evidence = append(rc.evidence, m.ContextBefore+" ["+m.Keyword+"] "+m.ContextAfter)
	}

	return rc
}

func insignificantOnlyOutcome(rc *ruleContext) domain.SignificanceResult {
	keywords := make([]string, 0, len(rc.insignificant))
	categories := make([]string, 0, len(rc.insignificant))
	seen := make(map[string]bool)
	for _, m := range rc.insignificant {
		keywords = append(keywords, m.Keyword)
		if !seen[m.Category] {
			seen[m.Category] = true
			categories = append(categories, m.Category)
		}
	}
	return domain.SignificanceResult{
		Classification:    domain.ClassificationInsignificant,
		Sentiment:         domain.SentimentNeutral,
		Confidence:        confidenceInsignificantOnly,
		MatchedKeywords:   keywords,
		MatchedCategories: categories,
		Notes:             "Only insignificant patterns detected with minor changes",
	}
}

func multipleNegativeOutcome(rc *ruleContext) domain.SignificanceResult {
	bonus := float64(len(rc.effectiveNegative)) * perKeywordBonus
	if bonus > negativeBonusCap {
		bonus = negativeBonusCap
	}
	return rc.result(
		domain.ClassificationSignificant,
		multipleSignalsBase+bonus,
		fmt.Sprintf("Multiple negative signals detected (%d negative keywords)", len(rc.effectiveNegative)),
	)
}

func multiplePositiveOutcome(rc *ruleContext) domain.SignificanceResult {
	bonus := float64(len(rc.effectivePositive)) * perKeywordBonus
	if bonus > positiveBonusCap {
		bonus = positiveBonusCap
	}
	return rc.result(
		domain.ClassificationSignificant,
		multipleSignalsBase+bonus,
		fmt.Sprintf("Multiple positive signals detected (%d positive keywords)", len(rc.effectivePositive)),
	)
}

func singleKeywordMajorOutcome(rc *ruleContext) domain.SignificanceResult {
	return rc.result(
		domain.ClassificationSignificant,
		confidenceSingleMajor,
		"Single keyword with major content change",
	)
}

func singleKeywordOutcome(rc *ruleContext) domain.SignificanceResult {
	if rc.magnitude == domain.MagnitudeMinor {
		return rc.result(
			domain.ClassificationUncertain,
			confidenceSingleMinor,
			"Single keyword with minor content change",
		)
	}
	return rc.result(
		domain.ClassificationUncertain,
		confidenceSingleModerate,
		"Single keyword with moderate content change",
	)
}

func noKeywordsOutcome(_ *ruleContext) domain.SignificanceResult {
	return domain.SignificanceResult{
		Classification: domain.ClassificationInsignificant,
		Sentiment:      domain.SentimentNeutral,
		Confidence:     confidenceNoKeywords,
		Notes:          "No significant keywords detected",
	}
}

// result builds an outcome carrying the effective-match evidence, with the
// negation/false-positive penalty applied and the confidence clamped.
func (rc *ruleContext) result(
	classification domain.Classification,
	baseConfidence float64,
	notes string,
) domain.SignificanceResult {
	return domain.SignificanceResult{
		Classification:    classification,
		Sentiment:         rc.sentiment(),
		Confidence:        domain.ClampConfidence(baseConfidence - rc.penalty),
		MatchedKeywords:   rc.keywords,
		MatchedCategories: rc.categories,
		Notes:             notes,
		EvidenceSnippets:  rc.evidence,
	}
}

// determineSentiment derives sentiment from effective keyword counts:
// two or more on both sides is mixed, two or more on one side takes that
// side, anything less is neutral.
func determineSentiment(positiveCount, negativeCount int) domain.Sentiment {
	switch {
	case positiveCount >= multipleSignalThreshold && negativeCount >= multipleSignalThreshold:
		return domain.SentimentMixed
	case negativeCount >= multipleSignalThreshold:
		return domain.SentimentNegative
	case positiveCount >= multipleSignalThreshold:
		return domain.SentimentPositive
	default:
		return domain.SentimentNeutral
	}
}
