// Package changedetect implements checksum and similarity based change
// detection between two content snapshots, and isolates newly added text
// so downstream keyword analysis never re-triggers on static boilerplate.
package changedetect

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jonesrussell/company-monitor/domain"
)

// MaxComparisonLength is the maximum number of characters compared per
// side. Longer inputs are truncated to bound worst-case latency.
const MaxComparisonLength = 50_000

// Magnitude band thresholds, inclusive at the lower edge of each band.
const (
	minorThreshold    = 0.90
	moderateThreshold = 0.50
)

// Similarity computes a longest-common-subsequence style ratio between two
// content strings. Identical strings yield 1.0, disjoint strings 0.0.
// Only the first MaxComparisonLength characters of each side are compared.
func Similarity(oldContent, newContent string) float64 {
	m := difflib.NewMatcher(
		splitChars(truncate(oldContent, MaxComparisonLength)),
		splitChars(truncate(newContent, MaxComparisonLength)),
	)
	return m.Ratio()
}

// DetermineMagnitude buckets a similarity ratio into a change magnitude.
func DetermineMagnitude(similarity float64) domain.ChangeMagnitude {
	switch {
	case similarity >= minorThreshold:
		return domain.MagnitudeMinor
	case similarity >= moderateThreshold:
		return domain.MagnitudeModerate
	default:
		return domain.MagnitudeMajor
	}
}

// truncate caps s at n characters (runes, not bytes).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// splitChars splits s into one string per rune for character-level diffing.
func splitChars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
