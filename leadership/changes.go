package leadership

import (
	"strings"

	"github.com/jonesrussell/company-monitor/domain"
)

// Compare diffs two roster snapshots keyed by profile URL. People in
// previous but not current are departures; people in current but not
// previous are arrivals. Departures are listed before arrivals, each in
// roster order.
func Compare(previous, current []domain.Person) []domain.LeadershipChange {
	prevURLs := make(map[string]bool, len(previous))
	for _, p := range previous {
		prevURLs[p.ProfileURL] = true
	}
	currURLs := make(map[string]bool, len(current))
	for _, p := range current {
		currURLs[p.ProfileURL] = true
	}

	var changes []domain.LeadershipChange

	for _, person := range previous {
		if currURLs[person.ProfileURL] {
			continue
		}
		changeType := classifyDeparture(person.Title)
		changes = append(changes, domain.LeadershipChange{
			Type:       changeType,
			PersonName: person.Name,
			Title:      person.Title,
			ProfileURL: person.ProfileURL,
			Severity:   ClassifySeverity(changeType),
		})
	}

	for _, person := range current {
		if prevURLs[person.ProfileURL] {
			continue
		}
		changeType := classifyArrival(person.Title)
		changes = append(changes, domain.LeadershipChange{
			Type:       changeType,
			PersonName: person.Name,
			Title:      person.Title,
			ProfileURL: person.ProfileURL,
			Severity:   ClassifySeverity(changeType),
		})
	}

	return changes
}

func classifyDeparture(title string) domain.ChangeType {
	switch strings.ToLower(strings.TrimSpace(title)) {
	case "ceo", "chief executive officer":
		return domain.ChangeCEODeparture
	case "founder", "co-founder", "cofounder", "co founder":
		return domain.ChangeFounderDeparture
	case "cto", "chief technology officer":
		return domain.ChangeCTODeparture
	case "coo", "chief operating officer":
		return domain.ChangeCOODeparture
	default:
		return domain.ChangeExecutiveDeparture
	}
}

func classifyArrival(title string) domain.ChangeType {
	switch strings.ToLower(strings.TrimSpace(title)) {
	case "ceo", "chief executive officer":
		return domain.ChangeNewCEO
	default:
		return domain.ChangeNewLeadership
	}
}

// criticalDepartures are the change types whose loss of a key officer is
// graded critical.
var criticalDepartures = map[domain.ChangeType]bool{
	domain.ChangeCEODeparture:     true,
	domain.ChangeFounderDeparture: true,
	domain.ChangeCTODeparture:     true,
	domain.ChangeCOODeparture:     true,
}

// ClassifySeverity grades a change type: key-officer departures are
// critical, other executive movement is notable, anything else is minor.
func ClassifySeverity(changeType domain.ChangeType) domain.Severity {
	if criticalDepartures[changeType] {
		return domain.SeverityCritical
	}
	switch changeType {
	case domain.ChangeNewCEO, domain.ChangeNewLeadership, domain.ChangeExecutiveDeparture:
		return domain.SeverityNotable
	default:
		return domain.SeverityMinor
	}
}
