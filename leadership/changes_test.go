package leadership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/company-monitor/domain"
)

func TestCompare_CEODeparture(t *testing.T) {
	previous := []domain.Person{
		{Name: "Alice", Title: "CEO", ProfileURL: "https://example.com/alice"},
	}

	changes := Compare(previous, nil)

	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeCEODeparture, changes[0].Type)
	assert.Equal(t, domain.SeverityCritical, changes[0].Severity)
	assert.Equal(t, "Alice", changes[0].PersonName)
	assert.Equal(t, "https://example.com/alice", changes[0].ProfileURL)
}

func TestCompare_NewCEO(t *testing.T) {
	current := []domain.Person{
		{Name: "Bob", Title: "Chief Executive Officer", ProfileURL: "https://example.com/bob"},
	}

	changes := Compare(nil, current)

	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeNewCEO, changes[0].Type)
	assert.Equal(t, domain.SeverityNotable, changes[0].Severity)
}

func TestCompare_IdentityIsProfileURL(t *testing.T) {
	// A title change for the same profile URL is not a departure or arrival.
	previous := []domain.Person{
		{Name: "Alice", Title: "CTO", ProfileURL: "https://example.com/alice"},
	}
	current := []domain.Person{
		{Name: "Alice", Title: "CEO", ProfileURL: "https://example.com/alice"},
	}

	assert.Empty(t, Compare(previous, current))
}

func TestCompare_DeparturesBeforeArrivals(t *testing.T) {
	previous := []domain.Person{
		{Name: "Alice", Title: "CEO", ProfileURL: "url/alice"},
		{Name: "Bob", Title: "VP of Product", ProfileURL: "url/bob"},
	}
	current := []domain.Person{
		{Name: "Bob", Title: "VP of Product", ProfileURL: "url/bob"},
		{Name: "Carol", Title: "CEO", ProfileURL: "url/carol"},
		{Name: "Dave", Title: "Head of Sales", ProfileURL: "url/dave"},
	}

	changes := Compare(previous, current)

	require.Len(t, changes, 3)
	assert.Equal(t, domain.ChangeCEODeparture, changes[0].Type)
	assert.Equal(t, domain.ChangeNewCEO, changes[1].Type)
	assert.Equal(t, domain.ChangeNewLeadership, changes[2].Type)
}

func TestCompare_DepartureClassification(t *testing.T) {
	tests := []struct {
		title string
		want  domain.ChangeType
	}{
		{"CEO", domain.ChangeCEODeparture},
		{"Chief Executive Officer", domain.ChangeCEODeparture},
		{"Founder", domain.ChangeFounderDeparture},
		{"co-founder", domain.ChangeFounderDeparture},
		{"CTO", domain.ChangeCTODeparture},
		{"COO", domain.ChangeCOODeparture},
		{"CFO", domain.ChangeExecutiveDeparture},
		{"VP of Engineering", domain.ChangeExecutiveDeparture},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			previous := []domain.Person{{Name: "X", Title: tt.title, ProfileURL: "url/x"}}
			changes := Compare(previous, nil)
			require.Len(t, changes, 1)
			assert.Equal(t, tt.want, changes[0].Type)
		})
	}
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		changeType domain.ChangeType
		want       domain.Severity
	}{
		{domain.ChangeCEODeparture, domain.SeverityCritical},
		{domain.ChangeFounderDeparture, domain.SeverityCritical},
		{domain.ChangeCTODeparture, domain.SeverityCritical},
		{domain.ChangeCOODeparture, domain.SeverityCritical},
		{domain.ChangeExecutiveDeparture, domain.SeverityNotable},
		{domain.ChangeNewCEO, domain.SeverityNotable},
		{domain.ChangeNewLeadership, domain.SeverityNotable},
		{domain.ChangeNone, domain.SeverityMinor},
	}

	for _, tt := range tests {
		if got := ClassifySeverity(tt.changeType); got != tt.want {
			t.Errorf("ClassifySeverity(%s) = %s, want %s", tt.changeType, got, tt.want)
		}
	}
}

func TestSummarize_NoChanges(t *testing.T) {
	result := Summarize(nil)

	assert.Equal(t, domain.ClassificationInsignificant, result.Classification)
	assert.Equal(t, domain.SentimentNeutral, result.Sentiment)
	assert.InDelta(t, 0.75, result.Confidence, 1e-9)
}

func TestSummarize_CriticalDeparture(t *testing.T) {
	previous := []domain.Person{
		{Name: "Alice", Title: "CEO", ProfileURL: "url/alice"},
	}
	result := Summarize(Compare(previous, nil))

	assert.Equal(t, domain.ClassificationSignificant, result.Classification)
	assert.Equal(t, domain.SentimentNegative, result.Sentiment)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
	assert.Equal(t, []string{"ceo_departure"}, result.MatchedKeywords)
	assert.Equal(t, []string{"critical"}, result.MatchedCategories)
	require.Len(t, result.EvidenceSnippets, 1)
	assert.Equal(t, "Alice (CEO) - ceo_departure", result.EvidenceSnippets[0])
}

func TestSummarize_NotableOnly(t *testing.T) {
	changes := []domain.LeadershipChange{
		{Type: domain.ChangeNewLeadership, PersonName: "Dave", Title: "VP of Sales",
			Severity: domain.SeverityNotable},
	}
	result := Summarize(changes)

	assert.Equal(t, domain.ClassificationSignificant, result.Classification)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.80, result.Confidence, 1e-9)
}

func TestSummarize_MixedSentiment(t *testing.T) {
	changes := []domain.LeadershipChange{
		{Type: domain.ChangeCEODeparture, PersonName: "Alice", Title: "CEO",
			Severity: domain.SeverityCritical},
		{Type: domain.ChangeNewCEO, PersonName: "Bob", Title: "CEO",
			Severity: domain.SeverityNotable},
	}
	result := Summarize(changes)

	assert.Equal(t, domain.SentimentMixed, result.Sentiment)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9) // critical dominates
	assert.Equal(t, []string{"critical", "notable"}, result.MatchedCategories)
}

func TestSummarize_UnknownPersonName(t *testing.T) {
	changes := []domain.LeadershipChange{
		{Type: domain.ChangeExecutiveDeparture, Title: "CFO", Severity: domain.SeverityNotable},
	}
	result := Summarize(changes)

	require.Len(t, result.EvidenceSnippets, 1)
	assert.Equal(t, "Unknown (CFO) - executive_departure", result.EvidenceSnippets[0])
}

func TestSummarize_MinorOnlyInsignificant(t *testing.T) {
	changes := []domain.LeadershipChange{
		{Type: domain.ChangeNone, Severity: domain.SeverityMinor},
	}
	result := Summarize(changes)

	assert.Equal(t, domain.ClassificationInsignificant, result.Classification)
	assert.InDelta(t, 0.75, result.Confidence, 1e-9)
}
