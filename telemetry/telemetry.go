// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the classification engines. A nil *Provider disables instrumentation;
// every engine checks before recording.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "company-monitor"

// Metrics holds all engine Prometheus metrics.
type Metrics struct {
	// Classification outcomes per engine (significance, status, leadership, verification).
	ClassificationsTotal *prometheus.CounterVec

	// Keyword matching
	MatchDuration prometheus.Histogram
	KeywordHits   *prometheus.CounterVec

	// Status indicators by kind and signal direction
	IndicatorsTotal *prometheus.CounterVec

	// Identity verification pass/fail
	VerificationsTotal *prometheus.CounterVec
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for a /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartSpan begins a span, or returns a no-op span when the provider is nil.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if p == nil || p.Tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.Tracer.Start(ctx, name)
}

func initMetrics() *Metrics {
	return &Metrics{
		ClassificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_classifications_total",
			Help: "Total classifications by engine and outcome",
		}, []string{"engine", "outcome"}),

		MatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "monitor_keyword_match_duration_seconds",
			Help:    "Time spent in lexicon matching per content scan",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		KeywordHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_keyword_hits_total",
			Help: "Total keyword matches by lexicon",
		}, []string{"lexicon"}),

		IndicatorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_status_indicators_total",
			Help: "Status indicators extracted, by kind and signal",
		}, []string{"kind", "signal"}),

		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_verifications_total",
			Help: "Identity verification verdicts",
		}, []string{"verified"}),
	}
}

// RecordClassification counts one classification outcome for an engine.
func (p *Provider) RecordClassification(engine, outcome string) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.ClassificationsTotal.WithLabelValues(engine, outcome).Inc()
}

// RecordMatch records one lexicon scan's duration and hit count.
func (p *Provider) RecordMatch(lexicon string, hits int, duration time.Duration) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.MatchDuration.Observe(duration.Seconds())
	p.Metrics.KeywordHits.WithLabelValues(lexicon).Add(float64(hits))
}

// RecordIndicator counts one extracted status indicator.
func (p *Provider) RecordIndicator(kind, signal string) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.IndicatorsTotal.WithLabelValues(kind, signal).Inc()
}

// RecordVerification counts one verification verdict.
func (p *Provider) RecordVerification(verified bool) {
	if p == nil || p.Metrics == nil {
		return
	}
	label := "false"
	if verified {
		label = "true"
	}
	p.Metrics.VerificationsTotal.WithLabelValues(label).Inc()
}
