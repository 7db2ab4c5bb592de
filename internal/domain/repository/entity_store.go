package repository

import (
	"github.com/wanderplan/internal/domain"
)

// EntityStore владеет коллекциями Trip и Spot на время сессии.
// All state is process memory; mutations are atomic with respect to each
// other. Deleting a trip deliberately leaves its spots in place.
type EntityStore interface {
	// CreateTrip stores a trip and returns it with an assigned ID.
	CreateTrip(trip domain.Trip) (domain.Trip, error)
	GetTrip(id string) (domain.Trip, error)
	ListTrips() []domain.Trip
	// DeleteTrip removes the trip only; spots referencing it become orphans.
	DeleteTrip(id string) error

	// CreateSpot stores a spot and returns it with an assigned ID.
	// A non-nil TripID must reference an existing trip.
	CreateSpot(spot domain.Spot) (domain.Spot, error)
	GetSpot(id string) (domain.Spot, error)
	// UpdateSpot merges the non-nil fields of upd into the stored spot.
	UpdateSpot(id string, upd domain.SpotUpdate) (domain.Spot, error)
	// DeleteSpot removes the spot and clears a dangling selection reference.
	DeleteSpot(id string) error
	ListSpotsForTrip(tripID string) []domain.Spot
	// ListUnaffiliatedSpots returns spots with no trip and type != ITINERARY.
	ListUnaffiliatedSpots() []domain.Spot

	// Selection is stored as a nullable ID and resolved by lookup at read
	// time, so it is stale-safe by construction.
	SelectSpot(id string) error
	SelectedSpot() (domain.Spot, bool)
	ClearSelection()

	// ApplyGeneration inserts one trip and its spots as a single atomic
	// batch and returns both with assigned IDs. Used by the generation
	// pipeline for all-or-nothing semantics.
	ApplyGeneration(trip domain.Trip, spots []domain.Spot) (domain.Trip, []domain.Spot, error)
}
