package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/company-monitor/domain"
)

var analyzerNow = time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)

func TestAnalyzeSnapshot_HealthySite(t *testing.T) {
	analyzer := NewAnalyzer(DefaultBands(), nil, nil)
	content := "© 2026 Acme Inc. All rights reserved."
	lastModified := analyzerNow.AddDate(0, 0, -10)

	status := analyzer.AnalyzeSnapshot(context.Background(), content, analyzerNow, &lastModified)

	assert.Equal(t, domain.StatusOperational, status.Status)
	assert.InDelta(t, 0.8, status.Confidence, 1e-9)
	require.Len(t, status.Indicators, 2)
	assert.Equal(t, IndicatorCopyrightYear, status.Indicators[0].Kind)
	assert.Equal(t, IndicatorLastModified, status.Indicators[1].Kind)
}

func TestAnalyzeSnapshot_AcquiredCompany(t *testing.T) {
	analyzer := NewAnalyzer(DefaultBands(), nil, nil)
	content := "© 2026 Acme Inc. Acme was acquired by BigCo and is winding down."
	lastModified := analyzerNow.AddDate(0, 0, -5)

	status := analyzer.AnalyzeSnapshot(context.Background(), content, analyzerNow, &lastModified)

	// Fresh copyright and content, but high-band confidence with any
	// negative indicator resolves to likely closed.
	assert.Equal(t, domain.StatusLikelyClosed, status.Status)
	assert.Len(t, status.Indicators, 3)
}

func TestAnalyzeSnapshot_NoIndicators(t *testing.T) {
	analyzer := NewAnalyzer(DefaultBands(), nil, nil)

	status := analyzer.AnalyzeSnapshot(context.Background(), "plain page with no markers", analyzerNow, nil)

	assert.Equal(t, domain.StatusUncertain, status.Status)
	assert.Zero(t, status.Confidence)
	assert.Empty(t, status.Indicators)
}

func TestAnalyzeSnapshot_StaleCopyrightOnly(t *testing.T) {
	analyzer := NewAnalyzer(DefaultBands(), nil, nil)
	content := "Copyright 2019 Acme"

	status := analyzer.AnalyzeSnapshot(context.Background(), content, analyzerNow, nil)

	// One negative indicator: confidence 0.4 reaches the low band, and the
	// negative majority decides.
	assert.Equal(t, domain.StatusLikelyClosed, status.Status)
	assert.InDelta(t, 0.4, status.Confidence, 1e-9)
}
