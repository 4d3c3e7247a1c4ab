// Package domain defines the shared result records and closed enumerations
// produced by the classification engines. Every consumer switches on these
// types; new values are additions to the contract, not internal details.
package domain

// Classification is the verdict of a significance analysis.
type Classification string

const (
	ClassificationSignificant   Classification = "significant"
	ClassificationInsignificant Classification = "insignificant"
	ClassificationUncertain     Classification = "uncertain"
)

// Sentiment describes the direction of the matched signals.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentMixed    Sentiment = "mixed"
)

// KeywordMatch is a single lexicon hit inside scanned content.
// The negation and false-positive passes annotate matches in place;
// a match with both flags false is an "effective" match.
type KeywordMatch struct {
	Keyword         string `json:"keyword"`
	Category        string `json:"category"`
	Position        int    `json:"position"` // byte offset into the scanned content
	ContextBefore   string `json:"context_before"`
	ContextAfter    string `json:"context_after"`
	IsNegated       bool   `json:"is_negated"`
	IsFalsePositive bool   `json:"is_false_positive"`
}

// Effective reports whether the match should count toward classification.
func (m KeywordMatch) Effective() bool {
	return !m.IsNegated && !m.IsFalsePositive
}

// SignificanceResult is the immutable outcome of one classification call.
type SignificanceResult struct {
	Classification    Classification `json:"classification"`
	Sentiment         Sentiment      `json:"sentiment"`
	Confidence        float64        `json:"confidence"` // 0.0-1.0
	MatchedKeywords   []string       `json:"matched_keywords,omitempty"`
	MatchedCategories []string       `json:"matched_categories,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	EvidenceSnippets  []string       `json:"evidence_snippets,omitempty"`
}

// ClampConfidence bounds a confidence value to [0.0, 1.0].
// Every engine applies this before returning a result.
func ClampConfidence(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
