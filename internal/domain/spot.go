package domain

import "time"

// Coordinates - географические координаты точки
type Coordinates struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// Valid reports whether the coordinates are inside the WGS84 range.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// SpotType - тип места (классификация определяет семантику отображения)
type SpotType string

const (
	SpotTypeVisited       SpotType = "VISITED"
	SpotTypeWantToVisit   SpotType = "WANT_TO_VISIT"
	SpotTypeItinerary     SpotType = "ITINERARY"
	SpotTypeAccommodation SpotType = "ACCOMMODATION"
)

// Valid reports whether t is one of the four known spot types.
func (t SpotType) Valid() bool {
	switch t {
	case SpotTypeVisited, SpotTypeWantToVisit, SpotTypeItinerary, SpotTypeAccommodation:
		return true
	}
	return false
}

// PhotoRef is an opaque photo reference (data URL or remote URL).
// The core never decodes it; insertion order is display order.
type PhotoRef string

// Spot - одно именованное место на карте.
// TripID == nil означает самостоятельное "сохранённое" место вне поездки.
type Spot struct {
	ID            string       `json:"id"`
	TripID        *string      `json:"trip_id,omitempty"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Type          SpotType     `json:"type"`
	Coordinates   Coordinates  `json:"coordinates"`
	ItineraryTime *time.Time   `json:"itinerary_time,omitempty"`
	VisitedDate   *time.Time   `json:"visited_date,omitempty"`
	Website       string       `json:"website,omitempty"`
	Photos        []PhotoRef   `json:"photos,omitempty"`
	// IsCheckIn is meaningful only for ACCOMMODATION spots.
	IsCheckIn *bool `json:"is_check_in,omitempty"`
}

// SpotUpdate - частичное обновление Spot; nil-поля не трогаются.
// Photos replaces the whole sequence when set (append/remove are expressed
// as full-sequence replacement by the caller).
type SpotUpdate struct {
	// TripID is a double pointer: nil leaves the trip link untouched,
	// pointer-to-nil detaches the spot from its trip.
	TripID        **string    `json:"-"`
	Name          *string     `json:"name,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Type          *SpotType   `json:"type,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	ItineraryTime *time.Time  `json:"itinerary_time,omitempty"`
	VisitedDate   *time.Time  `json:"visited_date,omitempty"`
	Website       *string     `json:"website,omitempty"`
	Photos        *[]PhotoRef `json:"photos,omitempty"`
	IsCheckIn     *bool       `json:"is_check_in,omitempty"`
}

// Apply merges the non-nil fields of u into s.
func (u SpotUpdate) Apply(s *Spot) {
	if u.TripID != nil {
		if *u.TripID == nil {
			s.TripID = nil
		} else {
			ref := **u.TripID
			s.TripID = &ref
		}
	}
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.Coordinates != nil {
		s.Coordinates = *u.Coordinates
	}
	if u.ItineraryTime != nil {
		t := *u.ItineraryTime
		s.ItineraryTime = &t
	}
	if u.VisitedDate != nil {
		t := *u.VisitedDate
		s.VisitedDate = &t
	}
	if u.Website != nil {
		s.Website = *u.Website
	}
	if u.Photos != nil {
		s.Photos = append([]PhotoRef(nil), (*u.Photos)...)
	}
	if u.IsCheckIn != nil {
		v := *u.IsCheckIn
		s.IsCheckIn = &v
	}
}
