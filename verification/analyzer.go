package verification

import (
	"context"

	"github.com/jonesrussell/company-monitor/domain"
	"github.com/jonesrussell/company-monitor/logger"
	"github.com/jonesrussell/company-monitor/telemetry"
)

// Verifier applies configured weights and a threshold to identity signals,
// with logging and telemetry. Safe for concurrent use.
type Verifier struct {
	weights   Weights
	threshold float64
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewVerifier creates a verifier. Nil weights use the defaults, a zero
// threshold uses DefaultThreshold, and both log and tp may be nil.
func NewVerifier(weights Weights, threshold float64, log logger.Logger, tp *telemetry.Provider) *Verifier {
	if weights == nil {
		weights = DefaultWeights()
	}
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Verifier{
		weights:   weights,
		threshold: threshold,
		logger:    log,
		telemetry: tp,
	}
}

// VerifyIdentity combines the signal values into a final verification
// result under the verifier's configuration.
func (v *Verifier) VerifyIdentity(
	ctx context.Context,
	signals Signals,
	evidence EvidenceInput,
) domain.VerificationResult {
	_, span := v.telemetry.StartSpan(ctx, "verification.verify_identity")
	defer span.End()

	result := Verify(signals, v.weights, v.threshold, evidence)
	v.telemetry.RecordVerification(result.Verified)

	v.logger.Debug("identity verification complete",
		logger.Int("signals", len(signals)),
		logger.Float64("confidence", result.Confidence),
		logger.Bool("verified", result.Verified),
	)

	return result
}
