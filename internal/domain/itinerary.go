package domain

import "fmt"

// GeneratedTrip - структурированный документ маршрута от генеративного провайдера.
// The document must be schema-validated before it is trusted (see Validate).
type GeneratedTrip struct {
	Summary string         `json:"summary" validate:"required"`
	Days    []GeneratedDay `json:"days" validate:"required,min=1,dive"`
}

// GeneratedDay - один день маршрута с кластером, жильём и активностями
type GeneratedDay struct {
	Day            int                     `json:"day" validate:"required,min=1"`
	MorningCluster string                  `json:"morning_cluster"`
	Accommodation  *GeneratedAccommodation `json:"accommodation" validate:"omitempty"`
	Activities     []GeneratedActivity     `json:"activities" validate:"dive"`
}

// GeneratedAccommodation - рекомендованное жильё ("базовый лагерь") на день
type GeneratedAccommodation struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Reason      string      `json:"reason"`
	IsCheckIn   bool        `json:"is_check_in"`
	Coordinates Coordinates `json:"coordinates"`
}

// GeneratedActivity - одна активность дня
type GeneratedActivity struct {
	// Time is a 24h time of day, e.g. "09:00".
	Time         string      `json:"time" validate:"required"`
	Name         string      `json:"name" validate:"required"`
	Notes        string      `json:"notes"`
	LocationName string      `json:"location_name"`
	EnergyScore  int         `json:"energy_score" validate:"min=1,max=10"`
	DurationMin  int         `json:"duration_min" validate:"min=0"`
	Coordinates  Coordinates `json:"coordinates"`
	Website      string      `json:"website,omitempty"`
}

// Validate выполняет структурные проверки сверх validate-тегов.
// Tag validation is done by the caller (pkg/validator); this covers the
// cross-field rules a tag cannot express.
func (g *GeneratedTrip) Validate() error {
	if len(g.Days) == 0 {
		return fmt.Errorf("generated trip has no days")
	}
	for i, d := range g.Days {
		if d.Day < 1 {
			return fmt.Errorf("day %d: invalid day number %d", i, d.Day)
		}
		if d.Accommodation != nil && !d.Accommodation.Coordinates.Valid() {
			return fmt.Errorf("day %d: accommodation has invalid coordinates", d.Day)
		}
		for j, a := range d.Activities {
			if !a.Coordinates.Valid() {
				return fmt.Errorf("day %d activity %d: invalid coordinates", d.Day, j)
			}
			if _, _, err := ParseClock(a.Time); err != nil {
				return fmt.Errorf("day %d activity %d: %w", d.Day, j, err)
			}
		}
	}
	return nil
}

// ParseClock parses a "HH:MM" 24h time of day.
func ParseClock(s string) (hour, minute int, err error) {
	if _, err = fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	return hour, minute, nil
}
