package usecase

import (
	"sort"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/pkg/calendar"
	"github.com/wanderplan/internal/pkg/utils"
	"github.com/wanderplan/internal/usecase/dto"
)

// unscheduledLabel - метка группы точек без времени в маршруте
const unscheduledLabel = "Unscheduled"

// ItineraryUseCase - проекция точек поездки в дневные группы.
// Чистая производная над чтением хранилища, ничего не мутирует.
type ItineraryUseCase struct {
	store  repository.EntityStore
	logger *zap.Logger
}

// NewItineraryUseCase - создание нового ItineraryUseCase
func NewItineraryUseCase(store repository.EntityStore, logger *zap.Logger) *ItineraryUseCase {
	return &ItineraryUseCase{
		store:  store,
		logger: logger,
	}
}

// Project строит дневную проекцию маршрута поездки.
// Каждая точка попадает ровно в одну группу: локальный календарный день её
// времени либо "Unscheduled" для точек без времени. Группы идут
// хронологически, Unscheduled всегда последней.
func (uc *ItineraryUseCase) Project(tripID string) (*dto.ItineraryResponse, error) {
	if _, err := uc.store.GetTrip(tripID); err != nil {
		return nil, err
	}

	spots := uc.store.ListSpotsForTrip(tripID)

	groups := map[string][]domain.Spot{}
	for _, s := range spots {
		key := unscheduledLabel
		if s.ItineraryTime != nil {
			t := s.ItineraryTime.Local()
			key = calendar.FormatLocalDate(t.Year(), t.Month(), t.Day())
		}
		groups[key] = append(groups[key], s)
	}

	// "YYYY-MM-DD" сортируется лексикографически; Unscheduled уходит в хвост
	keys := make([]string, 0, len(groups))
	for k := range groups {
		if k != unscheduledLabel {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := groups[unscheduledLabel]; ok {
		keys = append(keys, unscheduledLabel)
	}

	resp := &dto.ItineraryResponse{
		TripID: tripID,
		Groups: make([]dto.ItineraryDayGroup, 0, len(keys)),
		Total:  len(spots),
	}

	for _, key := range keys {
		members := groups[key]
		// Внутри группы по возрастанию времени, без времени первыми,
		// стабильно относительно порядка вставки
		sort.SliceStable(members, func(i, j int) bool {
			a, b := members[i].ItineraryTime, members[j].ItineraryTime
			if a == nil {
				return b != nil
			}
			if b == nil {
				return false
			}
			return a.Before(*b)
		})

		group := dto.ItineraryDayGroup{
			Label: key,
			Spots: make([]dto.ItinerarySpot, 0, len(members)),
		}
		if key != unscheduledLabel {
			date := key
			group.Date = &date
		}

		for i := range members {
			item := dto.ItinerarySpot{SpotResponse: dto.ConvertSpot(&members[i])}
			if i > 0 {
				item.DistanceFromPrevious = distanceLabel(&members[i-1], &members[i])
			}
			group.Spots = append(group.Spots, item)
		}
		resp.Groups = append(resp.Groups, group)
	}

	return resp, nil
}

// distanceLabel - подпись расстояния от предыдущей точки группы.
// Переходы от/к базовому лагерю не аннотируются: это не пеший сегмент дня.
func distanceLabel(prev, cur *domain.Spot) string {
	if prev.Type == domain.SpotTypeAccommodation || cur.Type == domain.SpotTypeAccommodation {
		return ""
	}
	km := utils.HaversineDistance(
		prev.Coordinates.Lat, prev.Coordinates.Lng,
		cur.Coordinates.Lat, cur.Coordinates.Lng,
	)
	return utils.FormatDistance(km)
}
