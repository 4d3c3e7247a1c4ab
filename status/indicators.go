// Package status determines a company's operational status from
// independent indicators: copyright-year freshness, acquisition phrasing,
// and HTTP content freshness. Indicator extraction and the rule engine are
// both pure; any notion of "now" is supplied by the caller.
package status

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonesrussell/company-monitor/domain"
)

// Indicator kinds.
const (
	IndicatorCopyrightYear = "copyright_year"
	IndicatorAcquisition   = "acquisition_text"
	IndicatorLastModified  = "http_last_modified"
)

// Bands holds the freshness cutoffs used when bucketing indicators.
type Bands struct {
	CopyrightFreshYears int `yaml:"copyright_fresh_years"` // within N years of now: positive
	CopyrightStaleYears int `yaml:"copyright_stale_years"` // within N years: neutral; older: negative
	FreshContentDays    int `yaml:"fresh_content_days"`    // Last-Modified within N days: positive
	StaleContentDays    int `yaml:"stale_content_days"`    // within N days: neutral; older: negative
}

// DefaultBands returns the standard freshness cutoffs.
func DefaultBands() Bands {
	return Bands{
		CopyrightFreshYears: 1,
		CopyrightStaleYears: 3,
		FreshContentDays:    90,
		StaleContentDays:    365,
	}
}

// copyrightPattern requires a copyright marker before the year and
// supports year ranges ("2020-2025", en dash included).
var copyrightPattern = regexp.MustCompile(`(?:\(c\)|\(C\)|[Cc]opyright|©)\s*(\d{4})(?:\s*[-–]\s*(\d{4}))?`)

// ExtractCopyrightYear returns the highest copyright year found in
// content. For year ranges the upper bound counts.
func ExtractCopyrightYear(content string) (int, bool) {
	maxYear := 0
	found := false
	for _, m := range copyrightPattern.FindAllStringSubmatch(content, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if m[2] != "" {
			if upper, err := strconv.Atoi(m[2]); err == nil {
				year = upper
			}
		}
		if !found || year > maxYear {
			maxYear = year
			found = true
		}
	}
	return maxYear, found
}

// AcquisitionPatterns signal the company has been absorbed by another.
// A bare "is now" is deliberately absent: it matches product copy like
// "X is now available".
var AcquisitionPatterns = []string{
	"acquired by",
	"merged with",
	"sold to",
	"now part of",
	"is now a subsidiary of",
	"is now a division of",
	"is now a part of",
	"is now a unit of",
	"is now a brand of",
}

// Context captured around an acquisition phrase.
const (
	acquisitionContextBefore = 30
	acquisitionContextAfter  = 50
)

// DetectAcquisition scans content for acquisition phrasing and returns the
// surrounding context of the first hit.
func DetectAcquisition(content string) (string, bool) {
	lower := strings.ToLower(content)
	for _, pattern := range AcquisitionPatterns {
		idx := strings.Index(lower, pattern)
		if idx < 0 {
			continue
		}
		start := idx - acquisitionContextBefore
		if start < 0 {
			start = 0
		}
		end := idx + len(pattern) + acquisitionContextAfter
		if end > len(content) {
			end = len(content)
		}
		return strings.TrimSpace(content[start:end]), true
	}
	return "", false
}

// CopyrightIndicator buckets a copyright year against the caller-supplied
// current time.
func CopyrightIndicator(year int, now time.Time, bands Bands) domain.StatusIndicator {
	indicator := domain.StatusIndicator{
		Kind:  IndicatorCopyrightYear,
		Value: strconv.Itoa(year),
	}
	switch currentYear := now.UTC().Year(); {
	case year >= currentYear-bands.CopyrightFreshYears:
		indicator.Signal = domain.SignalPositive
	case year >= currentYear-bands.CopyrightStaleYears:
		indicator.Signal = domain.SignalNeutral
	default:
		indicator.Signal = domain.SignalNegative
	}
	return indicator
}

// AcquisitionIndicator wraps detected acquisition context as a negative
// indicator.
func AcquisitionIndicator(context string) domain.StatusIndicator {
	return domain.StatusIndicator{
		Kind:   IndicatorAcquisition,
		Value:  context,
		Signal: domain.SignalNegative,
	}
}

// LastModifiedIndicator buckets HTTP Last-Modified freshness against the
// caller-supplied current time.
func LastModifiedIndicator(lastModified, now time.Time, bands Bands) domain.StatusIndicator {
	days := int(now.Sub(lastModified).Hours() / 24)
	indicator := domain.StatusIndicator{
		Kind:  IndicatorLastModified,
		Value: fmt.Sprintf("%d days ago", days),
	}
	switch {
	case days <= bands.FreshContentDays:
		indicator.Signal = domain.SignalPositive
	case days <= bands.StaleContentDays:
		indicator.Signal = domain.SignalNeutral
	default:
		indicator.Signal = domain.SignalNegative
	}
	return indicator
}
