package domain

import "time"

// ChillLevel - качественный уровень темпа поездки (влияет только на генерацию)
type ChillLevel string

const (
	ChillLevelRelaxed  ChillLevel = "Relaxed (Resort/Beach/Chill)"
	ChillLevelBalanced ChillLevel = "Balanced (Sightseeing + Rest)"
	ChillLevelActive   ChillLevel = "Active (Hiking/Adventure/Full Day)"
	ChillLevelCulture  ChillLevel = "Cultural (Museums/History/Food)"
	ChillLevelParty    ChillLevel = "Nightlife & Social"
)

// Valid reports whether l is one of the five known pacing levels.
func (l ChillLevel) Valid() bool {
	switch l {
	case ChillLevelRelaxed, ChillLevelBalanced, ChillLevelActive, ChillLevelCulture, ChillLevelParty:
		return true
	}
	return false
}

// EnergyCap возвращает дневной лимит суммарной "энергии" для генерации.
// No runtime effect inside the core; forwarded to the generation provider.
func (l ChillLevel) EnergyCap() int {
	switch l {
	case ChillLevelRelaxed:
		return 12
	case ChillLevelActive:
		return 28
	default:
		return 20
	}
}

// Trip - ограниченный план путешествия.
// StartDate is a calendar date; only its local Y/M/D components are meaningful.
type Trip struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	Days        int        `json:"days"`
	ChillLevel  ChillLevel `json:"chill_level"`
}

// End returns the exclusive end instant of the trip window [start, start+days).
func (t Trip) End() time.Time {
	return t.StartDate.AddDate(0, 0, t.Days)
}
