package status

import (
	"context"
	"time"

	"github.com/jonesrussell/company-monitor/domain"
	"github.com/jonesrussell/company-monitor/logger"
	"github.com/jonesrussell/company-monitor/telemetry"
)

const engineName = "status"

// Analyzer wires the indicator extractors into the status rule engine.
// Safe for concurrent use.
type Analyzer struct {
	bands     Bands
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewAnalyzer creates a status analyzer. Both log and tp may be nil.
func NewAnalyzer(bands Bands, log logger.Logger, tp *telemetry.Provider) *Analyzer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Analyzer{bands: bands, logger: log, telemetry: tp}
}

// AnalyzeSnapshot extracts indicators from a content snapshot and applies
// the status rules. The current time and the optional HTTP Last-Modified
// timestamp are inputs; nothing here reads the clock.
func (a *Analyzer) AnalyzeSnapshot(
	ctx context.Context,
	content string,
	now time.Time,
	lastModified *time.Time,
) domain.CompanyStatus {
	_, span := a.telemetry.StartSpan(ctx, "status.analyze_snapshot")
	defer span.End()

	var indicators []domain.StatusIndicator

	if year, ok := ExtractCopyrightYear(content); ok {
		indicators = append(indicators, CopyrightIndicator(year, now, a.bands))
	}

	if acquisitionContext, ok := DetectAcquisition(content); ok {
		indicators = append(indicators, AcquisitionIndicator(acquisitionContext))
	}

	if lastModified != nil {
		indicators = append(indicators, LastModifiedIndicator(*lastModified, now, a.bands))
	}

	for _, indicator := range indicators {
		a.telemetry.RecordIndicator(indicator.Kind, string(indicator.Signal))
	}

	confidence := CalculateConfidence(indicators)
	statusType := DetermineStatus(confidence, indicators)
	a.telemetry.RecordClassification(engineName, string(statusType))

	a.logger.Debug("status analysis complete",
		logger.Int("indicators", len(indicators)),
		logger.Float64("confidence", confidence),
		logger.String("status", string(statusType)),
	)

	return domain.CompanyStatus{
		Status:     statusType,
		Confidence: confidence,
		Indicators: indicators,
	}
}
