package status

import (
	"math"
	"testing"

	"github.com/jonesrussell/company-monitor/domain"
)

func indicator(signal domain.Signal) domain.StatusIndicator {
	return domain.StatusIndicator{Kind: "test", Signal: signal}
}

func indicatorList(signals ...domain.Signal) []domain.StatusIndicator {
	out := make([]domain.StatusIndicator, 0, len(signals))
	for _, s := range signals {
		out = append(out, indicator(s))
	}
	return out
}

func TestCalculateConfidence(t *testing.T) {
	tests := []struct {
		name    string
		signals []domain.Signal
		want    float64
	}{
		{"empty", nil, 0.0},
		{"one directional", []domain.Signal{domain.SignalPositive}, 0.4},
		{"one neutral", []domain.Signal{domain.SignalNeutral}, 0.2},
		{"positive and negative", []domain.Signal{domain.SignalPositive, domain.SignalNegative}, 0.8},
		{"mixed", []domain.Signal{domain.SignalPositive, domain.SignalNeutral}, 0.6},
		{"clamped at one", []domain.Signal{
			domain.SignalPositive, domain.SignalNegative, domain.SignalPositive,
		}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateConfidence(indicatorList(tt.signals...))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateConfidence = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name    string
		signals []domain.Signal
		want    domain.StatusType
	}{
		{"no indicators", nil, domain.StatusUncertain},
		{"single neutral below low band", []domain.Signal{domain.SignalNeutral}, domain.StatusUncertain},
		{"single positive at low band", []domain.Signal{domain.SignalPositive}, domain.StatusOperational},
		{"single negative at low band", []domain.Signal{domain.SignalNegative}, domain.StatusLikelyClosed},
		{
			"high confidence with any negative",
			[]domain.Signal{domain.SignalPositive, domain.SignalNegative},
			domain.StatusLikelyClosed,
		},
		{
			"high confidence all positive",
			[]domain.Signal{domain.SignalPositive, domain.SignalPositive},
			domain.StatusOperational,
		},
		{
			"mid band positive majority",
			[]domain.Signal{domain.SignalPositive, domain.SignalNeutral},
			domain.StatusOperational,
		},
		{
			"mid band negative majority",
			[]domain.Signal{domain.SignalNegative, domain.SignalNeutral},
			domain.StatusLikelyClosed,
		},
		{
			"mid band all neutral tie",
			[]domain.Signal{domain.SignalNeutral, domain.SignalNeutral},
			domain.StatusUncertain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indicators := indicatorList(tt.signals...)
			confidence := CalculateConfidence(indicators)
			if got := DetermineStatus(confidence, indicators); got != tt.want {
				t.Errorf("DetermineStatus(%f, %v) = %s, want %s",
					confidence, tt.signals, got, tt.want)
			}
		})
	}
}
