package repository

import (
	"context"

	"github.com/wanderplan/internal/domain"
)

// PlaceSearchRepository определяет методы для работы с внешним поисковым API
type PlaceSearchRepository interface {
	// SearchPlaces выполняет текстовый поиск мест.
	// bias, when non-nil, biases ranking towards the given coordinates.
	SearchPlaces(ctx context.Context, query string, bias *domain.Coordinates, limit int) ([]domain.PlaceFeature, error)
}
