package domain

// Signal is the direction a status indicator points in.
type Signal string

const (
	SignalPositive Signal = "positive"
	SignalNegative Signal = "negative"
	SignalNeutral  Signal = "neutral"
)

// StatusType is the operational-status verdict for a company.
type StatusType string

const (
	StatusOperational  StatusType = "operational"
	StatusLikelyClosed StatusType = "likely_closed"
	StatusUncertain    StatusType = "uncertain"
)

// StatusIndicator is one piece of evidence about operational status,
// produced by an indicator extractor (copyright year, acquisition
// phrasing, HTTP freshness).
type StatusIndicator struct {
	Kind   string `json:"kind"`  // e.g. "copyright_year"
	Value  string `json:"value"` // human-readable evidence
	Signal Signal `json:"signal"`
}

// CompanyStatus is the aggregate status verdict with its supporting evidence.
type CompanyStatus struct {
	Status     StatusType        `json:"status"`
	Confidence float64           `json:"confidence"` // 0.0-1.0
	Indicators []StatusIndicator `json:"indicators,omitempty"`
}
