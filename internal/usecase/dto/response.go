package dto

import (
	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/pkg/calendar"
)

// PlaceSuggestion - одна подсказка автодополнения
type PlaceSuggestion struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// SearchResponse - ответ на поиск мест
type SearchResponse struct {
	Suggestions []PlaceSuggestion `json:"suggestions"`
	// Superseded is true when a newer search was issued while this one
	// was pending; the suggestions are then empty and must be ignored.
	Superseded bool `json:"superseded"`
	Total      int  `json:"total"`
}

// TripResponse - поездка с производным прогрессом
type TripResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Days        int    `json:"days"`
	ChillLevel  string `json:"chill_level"`
	// Progress is the elapsed percentage of the trip window, 0..100.
	Progress int `json:"progress"`
}

// TripListResponse - список поездок
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}

// SpotResponse - точка
type SpotResponse struct {
	ID            string   `json:"id"`
	TripID        *string  `json:"trip_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Type          string   `json:"type"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	ItineraryTime *string  `json:"itinerary_time,omitempty"`
	VisitedDate   *string  `json:"visited_date,omitempty"`
	Website       string   `json:"website,omitempty"`
	Photos        []string `json:"photos"`
	IsCheckIn     *bool    `json:"is_check_in,omitempty"`
}

// SpotListResponse - список точек
type SpotListResponse struct {
	Spots []SpotResponse `json:"spots"`
	Total int            `json:"total"`
}

// SelectionResponse - текущая выбранная точка (nil если ничего не выбрано)
type SelectionResponse struct {
	Spot *SpotResponse `json:"spot"`
}

// ItinerarySpot - точка в проекции маршрута с аннотацией расстояния
type ItinerarySpot struct {
	SpotResponse
	// DistanceFromPrevious is a display label like "850m" or "1.2km",
	// empty for the first spot of a group and around accommodations.
	DistanceFromPrevious string `json:"distance_from_previous,omitempty"`
}

// ItineraryDayGroup - группа точек одного календарного дня
type ItineraryDayGroup struct {
	// Label is the local "YYYY-MM-DD" date or "Unscheduled".
	Label string          `json:"label"`
	Date  *string         `json:"date,omitempty"`
	Spots []ItinerarySpot `json:"spots"`
}

// ItineraryResponse - проекция маршрута поездки по дням
type ItineraryResponse struct {
	TripID string              `json:"trip_id"`
	Groups []ItineraryDayGroup `json:"groups"`
	Total  int                 `json:"total"`
}

// GenerateTripResponse - результат генерации поездки
type GenerateTripResponse struct {
	Trip    TripResponse   `json:"trip"`
	Spots   []SpotResponse `json:"spots"`
	Summary string         `json:"summary"`
}

// LightboxResponse - состояние галереи
type LightboxResponse struct {
	Open   bool   `json:"open"`
	SpotID string `json:"spot_id,omitempty"`
	Index  int    `json:"index"`
	Total  int    `json:"total"`
	Photo  string `json:"photo,omitempty"`
}

// CalendarResponse - сетка месяца для виджета выбора даты
type CalendarResponse struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	DaysInMonth  int             `json:"days_in_month"`
	FirstWeekday int             `json:"first_weekday"`
	Cells        []calendar.Cell `json:"cells"`
}

// ConvertSpot - преобразование доменной точки в DTO
func ConvertSpot(s *domain.Spot) SpotResponse {
	resp := SpotResponse{
		ID:          s.ID,
		TripID:      s.TripID,
		Name:        s.Name,
		Description: s.Description,
		Type:        string(s.Type),
		Lat:         s.Coordinates.Lat,
		Lng:         s.Coordinates.Lng,
		Website:     s.Website,
		Photos:      make([]string, 0, len(s.Photos)),
		IsCheckIn:   s.IsCheckIn,
	}
	for _, p := range s.Photos {
		resp.Photos = append(resp.Photos, string(p))
	}
	if s.ItineraryTime != nil {
		v := s.ItineraryTime.Format("2006-01-02T15:04:05Z07:00")
		resp.ItineraryTime = &v
	}
	if s.VisitedDate != nil {
		v := calendar.FormatLocalDate(s.VisitedDate.Year(), s.VisitedDate.Month(), s.VisitedDate.Day())
		resp.VisitedDate = &v
	}
	return resp
}

// ConvertTrip - преобразование доменной поездки в DTO
func ConvertTrip(t *domain.Trip, progress int) TripResponse {
	end := t.End()
	return TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   calendar.FormatLocalDate(t.StartDate.Year(), t.StartDate.Month(), t.StartDate.Day()),
		EndDate:     calendar.FormatLocalDate(end.Year(), end.Month(), end.Day()),
		Days:        t.Days,
		ChillLevel:  string(t.ChillLevel),
		Progress:    progress,
	}
}
