package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/pkg/calendar"
	"github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/usecase/dto"
)

// GenerationUseCase - конвейер генерации поездки.
// Провайдер опрашивается, документ проверяется, и только полностью собранный
// набор trip+spots применяется к хранилищу одним атомарным батчем. Любой
// сбой до этого момента не оставляет в хранилище следов.
type GenerationUseCase struct {
	store          repository.EntityStore
	genRepo        repository.GenerationRepository
	hasCredentials bool
	logger         *zap.Logger
	now            func() time.Time
}

// NewGenerationUseCase - создание нового GenerationUseCase
func NewGenerationUseCase(
	store repository.EntityStore,
	genRepo repository.GenerationRepository,
	hasCredentials bool,
	logger *zap.Logger,
) *GenerationUseCase {
	return &GenerationUseCase{
		store:          store,
		genRepo:        genRepo,
		hasCredentials: hasCredentials,
		logger:         logger,
		now:            time.Now,
	}
}

// Generate - генерация поездки с маршрутом по дням
func (uc *GenerationUseCase) Generate(ctx context.Context, req dto.GenerateTripRequest) (*dto.GenerateTripResponse, error) {
	if !uc.hasCredentials {
		return nil, errors.ErrMissingCredentials
	}

	chill := domain.ChillLevel(req.ChillLevel)
	if !chill.Valid() {
		return nil, errors.ErrInvalidChillLevel
	}
	startDate, err := calendar.ParseLocalDate(req.StartDate)
	if err != nil {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			"field": "start_date",
			"value": req.StartDate,
		})
	}

	images := make([]domain.PhotoRef, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, domain.PhotoRef(img))
	}

	genReq := repository.ItineraryRequest{
		Destination: req.Destination,
		Days:        req.Days,
		ChillLevel:  chill,
		StartDate:   req.StartDate,
		Images:      images,
		EnergyCap:   chill.EnergyCap(),
	}

	uc.logger.Info("Generating itinerary",
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Int("energy_cap", genReq.EnergyCap))

	generated, err := uc.genRepo.GenerateItinerary(ctx, genReq)
	if err != nil {
		uc.logger.Error("Itinerary generation failed", zap.Error(err))
		if stderrors.Is(err, repository.ErrInvalidItineraryDocument) {
			return nil, errors.ErrGenerationInvalidResponse
		}
		return nil, errors.ErrGenerationFailed
	}

	trip := domain.Trip{
		Destination: req.Destination,
		StartDate:   startDate,
		Days:        req.Days,
		ChillLevel:  chill,
	}
	spots := mapGeneratedSpots(generated, startDate)

	created, inserted, err := uc.store.ApplyGeneration(trip, spots)
	if err != nil {
		uc.logger.Error("Failed to apply generated trip", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Trip generated",
		zap.String("trip_id", created.ID),
		zap.Int("spots", len(inserted)))

	// Ответ строится из вставленных копий: у них уже назначены ID
	resp := &dto.GenerateTripResponse{
		Trip:    dto.ConvertTrip(&created, TripProgress(created, uc.now())),
		Spots:   make([]dto.SpotResponse, 0, len(inserted)),
		Summary: generated.Summary,
	}
	for i := range inserted {
		resp.Spots = append(resp.Spots, dto.ConvertSpot(&inserted[i]))
	}
	return resp, nil
}

// mapGeneratedSpots разворачивает документ провайдера в точки маршрута.
// День N ложится на startDate+(N-1); жильё ставится на 07:00 локального дня.
func mapGeneratedSpots(g *domain.GeneratedTrip, startDate time.Time) []domain.Spot {
	var spots []domain.Spot
	for _, day := range g.Days {
		date := startDate.AddDate(0, 0, day.Day-1)

		if acc := day.Accommodation; acc != nil {
			at := time.Date(date.Year(), date.Month(), date.Day(), 7, 0, 0, 0, time.Local)
			checkIn := acc.IsCheckIn
			spots = append(spots, domain.Spot{
				Name:          acc.Name,
				Description:   fmt.Sprintf("[Base Camp] %s. %s", acc.Reason, acc.Description),
				Type:          domain.SpotTypeAccommodation,
				Coordinates:   acc.Coordinates,
				ItineraryTime: &at,
				IsCheckIn:     &checkIn,
			})
		}

		for _, act := range day.Activities {
			hour, minute, err := domain.ParseClock(act.Time)
			if err != nil {
				// Документ прошёл валидацию, сюда попасть нельзя
				continue
			}
			at := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)
			spots = append(spots, domain.Spot{
				Name:          act.Name,
				Description:   activityDescription(day.MorningCluster, act),
				Type:          domain.SpotTypeItinerary,
				Coordinates:   act.Coordinates,
				ItineraryTime: &at,
				Website:       act.Website,
			})
		}
	}
	return spots
}

// activityDescription собирает описание активности с "батарейкой" энергии
func activityDescription(cluster string, act domain.GeneratedActivity) string {
	var b strings.Builder
	if cluster != "" {
		fmt.Fprintf(&b, "[%s • %s Battery: %d/10] ", cluster, energyGlyph(act.EnergyScore), act.EnergyScore)
	}
	fmt.Fprintf(&b, "%s: %s", act.LocationName, act.Notes)
	return b.String()
}

func energyGlyph(score int) string {
	switch {
	case score > 7:
		return "⚡"
	case score < 4:
		return "☕"
	default:
		return "✨"
	}
}
