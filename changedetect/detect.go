package changedetect

import "github.com/jonesrussell/company-monitor/domain"

// ChangeResult is the outcome of comparing two content snapshots.
type ChangeResult struct {
	Changed    bool                   `json:"changed"`
	Magnitude  domain.ChangeMagnitude `json:"magnitude"`
	Similarity float64                `json:"similarity"`
}

// DetectChange compares two snapshots by checksum first, falling back to
// text similarity. Equal checksums short-circuit to (false, minor, 1.0)
// regardless of text. Unequal checksums with either text missing (nil)
// default pessimistically to (true, major, 0.0); an empty string is a
// present, empty text and is compared normally.
func DetectChange(oldChecksum, newChecksum string, oldText, newText *string) ChangeResult {
	if oldChecksum == newChecksum {
		return ChangeResult{Changed: false, Magnitude: domain.MagnitudeMinor, Similarity: 1.0}
	}

	if oldText == nil || newText == nil {
		return ChangeResult{Changed: true, Magnitude: domain.MagnitudeMajor, Similarity: 0.0}
	}

	similarity := Similarity(*oldText, *newText)
	return ChangeResult{
		Changed:    true,
		Magnitude:  DetermineMagnitude(similarity),
		Similarity: similarity,
	}
}
