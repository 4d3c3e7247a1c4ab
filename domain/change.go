package domain

// ChangeMagnitude buckets how much two content snapshots differ,
// derived purely from a similarity ratio.
type ChangeMagnitude string

const (
	MagnitudeMinor    ChangeMagnitude = "minor"    // similarity >= 0.90
	MagnitudeModerate ChangeMagnitude = "moderate" // similarity 0.50-0.90
	MagnitudeMajor    ChangeMagnitude = "major"    // similarity < 0.50
)
