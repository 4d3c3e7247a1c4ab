package significance

import (
	"context"
	"time"

	"github.com/jonesrussell/company-monitor/domain"
	"github.com/jonesrussell/company-monitor/logger"
	"github.com/jonesrussell/company-monitor/telemetry"
)

const engineName = "significance"

// Analyzer runs the full significance pipeline: lexicon matching,
// negation and false-positive annotation, then rule-table classification.
// Safe for concurrent use; all state is immutable after construction.
type Analyzer struct {
	positive      *Matcher
	negative      *Matcher
	insignificant *Matcher
	logger        logger.Logger
	telemetry     *telemetry.Provider
}

// NewAnalyzer creates an analyzer over the built-in lexicons.
// Both log and tp may be nil.
func NewAnalyzer(log logger.Logger, tp *telemetry.Provider) *Analyzer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Analyzer{
		positive:      positiveMatcher,
		negative:      negativeMatcher,
		insignificant: insignificantMatcher,
		logger:        log,
		telemetry:     tp,
	}
}

// AnalyzeContent classifies content against the built-in lexicons with the
// given change magnitude. Callers analyzing a content change should pass
// only the added lines (changedetect.AddedLines), not the full snapshot.
func (a *Analyzer) AnalyzeContent(
	ctx context.Context,
	content string,
	magnitude domain.ChangeMagnitude,
) domain.SignificanceResult {
	_, span := a.telemetry.StartSpan(ctx, "significance.analyze_content")
	defer span.End()

	start := time.Now()
	positive := a.positive.Find(content)
	negative := a.negative.Find(content)
	insignificant := a.insignificant.Find(content)
	matchDuration := time.Since(start)

	ApplyNegation(positive, content)
	ApplyNegation(negative, content)
	ApplyFalsePositives(positive, content)
	ApplyFalsePositives(negative, content)

	a.telemetry.RecordMatch("positive", len(positive), matchDuration)
	a.telemetry.RecordMatch("negative", len(negative), matchDuration)
	a.telemetry.RecordMatch("insignificant", len(insignificant), matchDuration)

	result := Classify(positive, negative, insignificant, magnitude)
	a.telemetry.RecordClassification(engineName, string(result.Classification))

	a.logger.Debug("significance analysis complete",
		logger.Int("content_bytes", len(content)),
		logger.String("magnitude", string(magnitude)),
		logger.Int("positive_matches", len(positive)),
		logger.Int("negative_matches", len(negative)),
		logger.Int("insignificant_matches", len(insignificant)),
		logger.String("classification", string(result.Classification)),
		logger.String("sentiment", string(result.Sentiment)),
		logger.Float64("confidence", result.Confidence),
		logger.Duration("match_duration", matchDuration),
	)

	return result
}
