// Package verification combines independent identity signals (domain
// match, logo similarity, business context, LLM judgment) into a single
// weighted confidence score and pass/fail verdict.
package verification

import (
	"fmt"

	"github.com/jonesrussell/company-monitor/domain"
)

// Signal names recognized by the default weight table.
const (
	SignalLogo    = "logo"
	SignalDomain  = "domain"
	SignalContext = "context"
	SignalLLM     = "llm"
)

// DefaultThreshold is the minimum confidence for a verified verdict
// (inclusive).
const DefaultThreshold = 0.40

// Signals maps signal name to value in [0, 1]. Boolean signals are 0 or 1.
type Signals map[string]float64

// Weights maps signal name to its contribution weight. The default table
// sums to 1.0.
type Weights map[string]float64

// DefaultWeights returns the standard signal weight table.
func DefaultWeights() Weights {
	return Weights{
		SignalLogo:    0.30,
		SignalDomain:  0.30,
		SignalContext: 0.15,
		SignalLLM:     0.25,
	}
}

// WeightedConfidence sums signal value times weight for every signal
// present, clamped to [0, 1]. Missing signals contribute nothing; unknown
// signal names get weight 0.0 and are ignored rather than erroring.
// A nil weights map uses the defaults.
func WeightedConfidence(signals Signals, weights Weights) float64 {
	if weights == nil {
		weights = DefaultWeights()
	}
	total := 0.0
	for name, value := range signals {
		total += value * weights[name]
	}
	return domain.ClampConfidence(total)
}

// IsVerified reports whether confidence meets the threshold (inclusive).
func IsVerified(confidence, threshold float64) bool {
	return confidence >= threshold
}

// EvidenceInput carries the raw per-signal outcomes used to build the
// human-readable evidence list.
type EvidenceInput struct {
	LogoMatched    bool
	LogoSimilarity float64
	DomainMatched  bool
	Domain         string
	ContextMatched bool
	CompanyName    string
	LLMMatched     bool
	LLMReason      string
}

// BuildEvidence returns one human-readable string per signal that
// evaluated positive; absent or failed signals contribute nothing.
func BuildEvidence(in EvidenceInput) []string {
	var evidence []string

	if in.LogoMatched {
		evidence = append(evidence, fmt.Sprintf("Logo similarity: %.2f", in.LogoSimilarity))
	}
	if in.DomainMatched {
		evidence = append(evidence, fmt.Sprintf("Domain match: %s", in.Domain))
	}
	if in.ContextMatched {
		evidence = append(evidence, fmt.Sprintf("Name in business context: %s", in.CompanyName))
	}
	if in.LLMMatched {
		evidence = append(evidence, fmt.Sprintf("LLM verification: %s", in.LLMReason))
	}

	return evidence
}

// Verify combines the signal values into a final verification result.
// Nil weights use the defaults; a zero threshold uses DefaultThreshold.
func Verify(signals Signals, weights Weights, threshold float64, evidence EvidenceInput) domain.VerificationResult {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	confidence := WeightedConfidence(signals, weights)
	return domain.VerificationResult{
		Confidence: confidence,
		Verified:   IsVerified(confidence, threshold),
		Evidence:   BuildEvidence(evidence),
	}
}
