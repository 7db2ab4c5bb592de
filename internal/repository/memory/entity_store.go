// Package memory держит всё состояние сессии планирования в памяти процесса.
// There is no durability: the store starts empty and dies with the process.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/pkg/errors"
)

type entityStore struct {
	mu    sync.RWMutex
	trips map[string]domain.Trip
	spots map[string]domain.Spot
	// spotOrder preserves insertion order for deterministic listings.
	spotOrder []string
	tripOrder []string
	// selectedID is a nullable reference, resolved by lookup on read.
	selectedID string
}

// NewEntityStore - создание пустого in-memory хранилища сессии
func NewEntityStore() repository.EntityStore {
	return &entityStore{
		trips: make(map[string]domain.Trip),
		spots: make(map[string]domain.Spot),
	}
}

func (s *entityStore) CreateTrip(trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertTrip(trip)
}

// insertTrip assumes the write lock is held.
func (s *entityStore) insertTrip(trip domain.Trip) (domain.Trip, error) {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	s.trips[trip.ID] = trip
	s.tripOrder = append(s.tripOrder, trip.ID)
	return trip, nil
}

func (s *entityStore) GetTrip(id string) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trip, ok := s.trips[id]
	if !ok {
		return domain.Trip{}, errors.ErrTripNotFound
	}
	return trip, nil
}

func (s *entityStore) ListTrips() []domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Trip, 0, len(s.tripOrder))
	for _, id := range s.tripOrder {
		if trip, ok := s.trips[id]; ok {
			result = append(result, trip)
		}
	}
	return result
}

// DeleteTrip удаляет только саму поездку; её Spot-ы остаются сиротами.
// Cascading deletes are deliberately not performed.
func (s *entityStore) DeleteTrip(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[id]; !ok {
		return errors.ErrTripNotFound
	}
	delete(s.trips, id)
	s.tripOrder = removeID(s.tripOrder, id)
	return nil
}

func (s *entityStore) CreateSpot(spot domain.Spot) (domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertSpot(spot)
}

// insertSpot assumes the write lock is held.
func (s *entityStore) insertSpot(spot domain.Spot) (domain.Spot, error) {
	if spot.TripID != nil {
		if _, ok := s.trips[*spot.TripID]; !ok {
			return domain.Spot{}, errors.ErrUnknownTrip
		}
	}
	if spot.ID == "" {
		spot.ID = uuid.NewString()
	}
	// Хранилище владеет своей копией фотопоследовательности
	if len(spot.Photos) > 0 {
		spot.Photos = append([]domain.PhotoRef(nil), spot.Photos...)
	}
	s.spots[spot.ID] = spot
	s.spotOrder = append(s.spotOrder, spot.ID)
	return spot, nil
}

func (s *entityStore) GetSpot(id string) (domain.Spot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spot, ok := s.spots[id]
	if !ok {
		return domain.Spot{}, errors.ErrSpotNotFound
	}
	return spot, nil
}

func (s *entityStore) UpdateSpot(id string, upd domain.SpotUpdate) (domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spot, ok := s.spots[id]
	if !ok {
		return domain.Spot{}, errors.ErrSpotNotFound
	}
	// Перепривязка к поездке проверяется так же, как при создании
	if upd.TripID != nil && *upd.TripID != nil {
		if _, ok := s.trips[**upd.TripID]; !ok {
			return domain.Spot{}, errors.ErrUnknownTrip
		}
	}
	upd.Apply(&spot)
	s.spots[id] = spot
	return spot, nil
}

func (s *entityStore) DeleteSpot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spots[id]; !ok {
		return errors.ErrSpotNotFound
	}
	delete(s.spots, id)
	s.spotOrder = removeID(s.spotOrder, id)
	// Selection is a bare reference; drop it when its target goes away.
	if s.selectedID == id {
		s.selectedID = ""
	}
	return nil
}

func (s *entityStore) ListSpotsForTrip(tripID string) []domain.Spot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Spot
	for _, id := range s.spotOrder {
		spot, ok := s.spots[id]
		if ok && spot.TripID != nil && *spot.TripID == tripID {
			result = append(result, spot)
		}
	}
	return result
}

// ListUnaffiliatedSpots возвращает "сохранённые" места: без поездки и не
// ITINERARY (элементы маршрута никогда не попадают в сохранённые).
func (s *entityStore) ListUnaffiliatedSpots() []domain.Spot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Spot
	for _, id := range s.spotOrder {
		spot, ok := s.spots[id]
		if ok && spot.TripID == nil && spot.Type != domain.SpotTypeItinerary {
			result = append(result, spot)
		}
	}
	return result
}

func (s *entityStore) SelectSpot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spots[id]; !ok {
		return errors.ErrSpotNotFound
	}
	s.selectedID = id
	return nil
}

func (s *entityStore) SelectedSpot() (domain.Spot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return domain.Spot{}, false
	}
	spot, ok := s.spots[s.selectedID]
	return spot, ok
}

func (s *entityStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// ApplyGeneration вставляет поездку и её Spot-ы одной атомарной операцией.
// Callers build everything up front; nothing is written on their failure path.
func (s *entityStore) ApplyGeneration(trip domain.Trip, spots []domain.Spot) (domain.Trip, []domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.insertTrip(trip)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	inserted := make([]domain.Spot, 0, len(spots))
	for i := range spots {
		spots[i].TripID = &created.ID
		spot, err := s.insertSpot(spots[i])
		if err != nil {
			return domain.Trip{}, nil, err
		}
		inserted = append(inserted, spot)
	}
	return created, inserted, nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
