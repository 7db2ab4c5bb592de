package usecase

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/usecase/dto"
)

// TripUseCase - use case для работы с поездками
type TripUseCase struct {
	store  repository.EntityStore
	logger *zap.Logger
	now    func() time.Time
}

// NewTripUseCase - создание нового TripUseCase
func NewTripUseCase(store repository.EntityStore, logger *zap.Logger) *TripUseCase {
	return &TripUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListTrips - список всех поездок с прогрессом
func (uc *TripUseCase) ListTrips() *dto.TripListResponse {
	trips := uc.store.ListTrips()
	now := uc.now()

	resp := &dto.TripListResponse{
		Trips: make([]dto.TripResponse, 0, len(trips)),
		Total: len(trips),
	}
	for i := range trips {
		resp.Trips = append(resp.Trips, dto.ConvertTrip(&trips[i], TripProgress(trips[i], now)))
	}
	return resp
}

// GetTrip - поездка по идентификатору
func (uc *TripUseCase) GetTrip(id string) (*dto.TripResponse, error) {
	trip, err := uc.store.GetTrip(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertTrip(&trip, TripProgress(trip, uc.now()))
	return &resp, nil
}

// DeleteTrip - удаление поездки.
// Точки поездки намеренно остаются в хранилище как самостоятельные.
func (uc *TripUseCase) DeleteTrip(id string) error {
	if err := uc.store.DeleteTrip(id); err != nil {
		return err
	}
	uc.logger.Info("Trip deleted", zap.String("trip_id", id))
	return nil
}

// TripProgress возвращает прошедшую долю окна поездки в процентах.
// 0 до начала, 100 на конце [start, start+days) и позже, иначе округлённый
// процент прошедшего времени.
func TripProgress(t domain.Trip, now time.Time) int {
	start := t.StartDate
	end := t.End()
	if !now.After(start) {
		return 0
	}
	if !now.Before(end) {
		return 100
	}
	frac := float64(now.Sub(start)) / float64(end.Sub(start))
	pct := int(math.Round(frac * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
