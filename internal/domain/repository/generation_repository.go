package repository

import (
	"context"
	"errors"

	"github.com/wanderplan/internal/domain"
)

// ErrInvalidItineraryDocument marks provider responses that arrived but did
// not parse or validate as an itinerary document. Wrapped by implementations
// so callers can distinguish a bad answer from a failed call.
var ErrInvalidItineraryDocument = errors.New("invalid itinerary document")

// ItineraryRequest - запрос на генерацию маршрута
type ItineraryRequest struct {
	Destination string
	Days        int
	ChillLevel  domain.ChillLevel
	// StartDate is the canonical "YYYY-MM-DD" local date string.
	StartDate string
	// Images are optional reference images (data URLs) for multimodal input.
	Images []domain.PhotoRef
	// EnergyCap is the daily energy budget hint derived from ChillLevel.
	EnergyCap int
}

// GenerationRepository определяет методы для работы с генеративным провайдером
type GenerationRepository interface {
	// GenerateItinerary запрашивает у провайдера структурированный маршрут.
	// The returned document is schema-validated by the client; a response
	// that fails to parse or validate is returned as an error.
	GenerateItinerary(ctx context.Context, req ItineraryRequest) (*domain.GeneratedTrip, error)
}
