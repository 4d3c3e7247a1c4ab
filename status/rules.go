package status

import "github.com/jonesrussell/company-monitor/domain"

// Confidence contribution per indicator, and the decision bands.
const (
	directionalWeight  = 0.4 // positive or negative indicator
	neutralWeight      = 0.2
	lowConfidenceBand  = 0.4
	highConfidenceBand = 0.7
)

// CalculateConfidence sums indicator contributions and clamps to [0, 1].
// Directional indicators (positive or negative) count more than neutral
// ones; an empty list yields 0.0.
func CalculateConfidence(indicators []domain.StatusIndicator) float64 {
	total := 0.0
	for _, indicator := range indicators {
		if indicator.Signal == domain.SignalNeutral {
			total += neutralWeight
		} else {
			total += directionalWeight
		}
	}
	return domain.ClampConfidence(total)
}

type statusContext struct {
	confidence float64
	positive   int
	negative   int
}

// statusRule pairs a predicate with a status outcome; first match wins.
type statusRule struct {
	name    string
	applies func(statusContext) bool
	outcome domain.StatusType
}

// statusRules is the ordered decision table. Below the low band nothing is
// trusted; in the high band any negative evidence dominates; in between,
// the majority direction decides and ties stay uncertain.
var statusRules = []statusRule{
	{
		name:    "low_confidence",
		applies: func(sc statusContext) bool { return sc.confidence < lowConfidenceBand },
		outcome: domain.StatusUncertain,
	},
	{
		name: "high_confidence_negative",
		applies: func(sc statusContext) bool {
			return sc.confidence >= highConfidenceBand && sc.negative > 0
		},
		outcome: domain.StatusLikelyClosed,
	},
	{
		name:    "high_confidence",
		applies: func(sc statusContext) bool { return sc.confidence >= highConfidenceBand },
		outcome: domain.StatusOperational,
	},
	{
		name:    "positive_majority",
		applies: func(sc statusContext) bool { return sc.positive > sc.negative },
		outcome: domain.StatusOperational,
	},
	{
		name:    "negative_majority",
		applies: func(sc statusContext) bool { return sc.negative > sc.positive },
		outcome: domain.StatusLikelyClosed,
	},
	{
		name:    "tie",
		applies: func(statusContext) bool { return true },
		outcome: domain.StatusUncertain,
	},
}

// DetermineStatus applies the ordered status decision table.
func DetermineStatus(confidence float64, indicators []domain.StatusIndicator) domain.StatusType {
	sc := statusContext{confidence: confidence}
	for _, indicator := range indicators {
		switch indicator.Signal {
		case domain.SignalPositive:
			sc.positive++
		case domain.SignalNegative:
			sc.negative++
		}
	}

	for _, rule := range statusRules {
		if rule.applies(sc) {
			return rule.outcome
		}
	}
	return domain.StatusUncertain // table ends in a catch-all; not reached
}
