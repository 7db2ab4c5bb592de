package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wanderplan/internal/pkg/utils"
	"github.com/wanderplan/internal/usecase"
)

// TripHandler - обработчик поездок и проекции маршрута
type TripHandler struct {
	tripUC      *usecase.TripUseCase
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

// NewTripHandler - создание нового TripHandler
func NewTripHandler(tripUC *usecase.TripUseCase, itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC:      tripUC,
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// ListTrips godoc
// @Summary Список поездок
// @Description Возвращает все поездки сессии с прогрессом по времени (0-100%)
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.TripListResponse}
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c *fiber.Ctx) error {
	result := h.tripUC.ListTrips()
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// GetTrip godoc
// @Summary Поездка по идентификатору
// @Tags Trips
// @Produce json
// @Param id path string true "Идентификатор поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.TripResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	result, err := h.tripUC.GetTrip(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteTrip godoc
// @Summary Удаление поездки
// @Description Удаляет поездку. Её точки остаются в хранилище как самостоятельные.
// @Tags Trips
// @Produce json
// @Param id path string true "Идентификатор поездки"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	if err := h.tripUC.DeleteTrip(c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// GetItinerary godoc
// @Summary Маршрут поездки по дням
// @Description Группирует точки поездки по локальным календарным дням, внутри дня по времени, точки без времени в группе Unscheduled в конце. Между соседними точками дня указано расстояние пешего перехода.
// @Tags Trips
// @Produce json
// @Param id path string true "Идентификатор поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/itinerary [get]
func (h *TripHandler) GetItinerary(c *fiber.Ctx) error {
	result, err := h.itineraryUC.Project(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
