package domain

// ChangeType classifies a single leadership roster change.
type ChangeType string

const (
	ChangeCEODeparture       ChangeType = "ceo_departure"
	ChangeFounderDeparture   ChangeType = "founder_departure"
	ChangeCTODeparture       ChangeType = "cto_departure"
	ChangeCOODeparture       ChangeType = "coo_departure"
	ChangeExecutiveDeparture ChangeType = "executive_departure"
	ChangeNewCEO             ChangeType = "new_ceo"
	ChangeNewLeadership      ChangeType = "new_leadership"
	ChangeNone               ChangeType = "no_change"
)

// Severity grades how serious a leadership change is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityNotable  Severity = "notable"
	SeverityMinor    Severity = "minor"
)

// Person is one entry in a leadership roster snapshot.
// ProfileURL is the stable identity key used when diffing rosters.
type Person struct {
	Name       string `json:"person_name"`
	Title      string `json:"title"`
	ProfileURL string `json:"profile_url"`
}

// LeadershipChange is one detected departure or arrival between two
// roster snapshots.
type LeadershipChange struct {
	Type       ChangeType `json:"change_type"`
	PersonName string     `json:"person_name"`
	Title      string     `json:"title"`
	ProfileURL string     `json:"profile_url"`
	Severity   Severity   `json:"severity"`
}
