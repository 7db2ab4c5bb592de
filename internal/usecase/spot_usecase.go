package usecase

import (
	"time"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/pkg/calendar"
	"github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/pkg/utils"
	"github.com/wanderplan/internal/usecase/dto"
)

// SpotUseCase - use case для работы с точками на карте
type SpotUseCase struct {
	store  repository.EntityStore
	logger *zap.Logger
}

// NewSpotUseCase - создание нового SpotUseCase
func NewSpotUseCase(store repository.EntityStore, logger *zap.Logger) *SpotUseCase {
	return &SpotUseCase{
		store:  store,
		logger: logger,
	}
}

// CreateSpot - создание точки (сохранённое место или событие маршрута)
func (uc *SpotUseCase) CreateSpot(req dto.CreateSpotRequest) (*dto.SpotResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	spotType := domain.SpotType(req.Type)
	if !spotType.Valid() {
		return nil, errors.ErrInvalidSpotType
	}

	spot := domain.Spot{
		TripID:      req.TripID,
		Name:        req.Name,
		Description: req.Description,
		Type:        spotType,
		Coordinates: domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		Website:     req.Website,
		IsCheckIn:   req.IsCheckIn,
	}

	if req.ItineraryTime != nil {
		t, err := time.Parse(time.RFC3339, *req.ItineraryTime)
		if err != nil {
			return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"field": "itinerary_time",
				"value": *req.ItineraryTime,
			})
		}
		local := t.Local()
		spot.ItineraryTime = &local
	}
	if req.VisitedDate != nil {
		d, err := calendar.ParseLocalDate(*req.VisitedDate)
		if err != nil {
			return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"field": "visited_date",
				"value": *req.VisitedDate,
			})
		}
		spot.VisitedDate = &d
	}
	for _, p := range req.Photos {
		spot.Photos = append(spot.Photos, domain.PhotoRef(p))
	}

	// Ручной "базовый лагерь" получает чекин и описание по умолчанию
	if spotType == domain.SpotTypeAccommodation {
		if spot.IsCheckIn == nil {
			checkIn := true
			spot.IsCheckIn = &checkIn
		}
		if spot.Description == "" {
			spot.Description = "Manual Base Camp"
		}
	}
	if spotType == domain.SpotTypeItinerary && spot.Description == "" && spot.TripID != nil {
		spot.Description = "User added activity"
	}
	// Сохранённое вручную место без описания
	if spotType == domain.SpotTypeWantToVisit && spot.Description == "" {
		spot.Description = "Saved place"
	}

	created, err := uc.store.CreateSpot(spot)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Spot created",
		zap.String("spot_id", created.ID),
		zap.String("type", string(created.Type)))

	resp := dto.ConvertSpot(&created)
	return &resp, nil
}

// GetSpot - точка по идентификатору
func (uc *SpotUseCase) GetSpot(id string) (*dto.SpotResponse, error) {
	spot, err := uc.store.GetSpot(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertSpot(&spot)
	return &resp, nil
}

// UpdateSpot - частичное обновление точки
func (uc *SpotUseCase) UpdateSpot(id string, req dto.UpdateSpotRequest) (*dto.SpotResponse, error) {
	upd := domain.SpotUpdate{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		IsCheckIn:   req.IsCheckIn,
	}

	if req.TripID != nil {
		// Пустая строка отвязывает точку от поездки
		if *req.TripID == "" {
			var none *string
			upd.TripID = &none
		} else {
			ref := *req.TripID
			refPtr := &ref
			upd.TripID = &refPtr
		}
	}

	if req.Type != nil {
		spotType := domain.SpotType(*req.Type)
		if !spotType.Valid() {
			return nil, errors.ErrInvalidSpotType
		}
		upd.Type = &spotType
	}
	if req.Lat != nil || req.Lng != nil {
		// Координаты меняются только парой
		if req.Lat == nil || req.Lng == nil {
			return nil, errors.ErrInvalidCoordinates
		}
		if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
		upd.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}
	if req.ItineraryTime != nil {
		t, err := time.Parse(time.RFC3339, *req.ItineraryTime)
		if err != nil {
			return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"field": "itinerary_time",
				"value": *req.ItineraryTime,
			})
		}
		local := t.Local()
		upd.ItineraryTime = &local
	}
	if req.VisitedDate != nil {
		d, err := calendar.ParseLocalDate(*req.VisitedDate)
		if err != nil {
			return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"field": "visited_date",
				"value": *req.VisitedDate,
			})
		}
		upd.VisitedDate = &d
	}
	if req.Photos != nil {
		photos := make([]domain.PhotoRef, 0, len(*req.Photos))
		for _, p := range *req.Photos {
			photos = append(photos, domain.PhotoRef(p))
		}
		upd.Photos = &photos
	}

	updated, err := uc.store.UpdateSpot(id, upd)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertSpot(&updated)
	return &resp, nil
}

// DeleteSpot - удаление точки
func (uc *SpotUseCase) DeleteSpot(id string) error {
	if err := uc.store.DeleteSpot(id); err != nil {
		return err
	}
	uc.logger.Info("Spot deleted", zap.String("spot_id", id))
	return nil
}

// ListSaved - сохранённые места вне поездок
func (uc *SpotUseCase) ListSaved() *dto.SpotListResponse {
	spots := uc.store.ListUnaffiliatedSpots()
	resp := &dto.SpotListResponse{
		Spots: make([]dto.SpotResponse, 0, len(spots)),
		Total: len(spots),
	}
	for i := range spots {
		resp.Spots = append(resp.Spots, dto.ConvertSpot(&spots[i]))
	}
	return resp
}

// AddPhoto - добавление фото в конец галереи точки
func (uc *SpotUseCase) AddPhoto(id string, photo string) (*dto.SpotResponse, error) {
	spot, err := uc.store.GetSpot(id)
	if err != nil {
		return nil, err
	}
	photos := append(append([]domain.PhotoRef(nil), spot.Photos...), domain.PhotoRef(photo))
	return uc.replacePhotos(id, photos)
}

// RemovePhoto - удаление фото по индексу с сохранением порядка остальных
func (uc *SpotUseCase) RemovePhoto(id string, index int) (*dto.SpotResponse, error) {
	spot, err := uc.store.GetSpot(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(spot.Photos) {
		return nil, errors.ErrPhotoIndexOutOfRange.WithDetails(map[string]interface{}{
			"index": index,
			"total": len(spot.Photos),
		})
	}
	photos := make([]domain.PhotoRef, 0, len(spot.Photos)-1)
	photos = append(photos, spot.Photos[:index]...)
	photos = append(photos, spot.Photos[index+1:]...)
	return uc.replacePhotos(id, photos)
}

func (uc *SpotUseCase) replacePhotos(id string, photos []domain.PhotoRef) (*dto.SpotResponse, error) {
	updated, err := uc.store.UpdateSpot(id, domain.SpotUpdate{Photos: &photos})
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertSpot(&updated)
	return &resp, nil
}

// Select - выбор точки на карте
func (uc *SpotUseCase) Select(id string) error {
	return uc.store.SelectSpot(id)
}

// Selection - текущая выбранная точка, nil если выбора нет
func (uc *SpotUseCase) Selection() *dto.SelectionResponse {
	spot, ok := uc.store.SelectedSpot()
	if !ok {
		return &dto.SelectionResponse{}
	}
	resp := dto.ConvertSpot(&spot)
	return &dto.SelectionResponse{Spot: &resp}
}

// ClearSelection - сброс выбора
func (uc *SpotUseCase) ClearSelection() {
	uc.store.ClearSelection()
}
