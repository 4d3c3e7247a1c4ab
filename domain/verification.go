package domain

// VerificationResult is the outcome of combining independent identity
// signals into a single pass/fail verdict.
type VerificationResult struct {
	Confidence float64  `json:"confidence"` // 0.0-1.0
	Verified   bool     `json:"verified"`
	Evidence   []string `json:"evidence,omitempty"`
}
