package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/pkg/utils"
	"github.com/wanderplan/internal/pkg/validator"
	"github.com/wanderplan/internal/usecase"
	"github.com/wanderplan/internal/usecase/dto"
)

// SpotHandler - обработчик точек, их фото и выбора на карте
type SpotHandler struct {
	spotUC *usecase.SpotUseCase
	logger *zap.Logger
}

// NewSpotHandler - создание нового SpotHandler
func NewSpotHandler(spotUC *usecase.SpotUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

// CreateSpot godoc
// @Summary Создание точки
// @Description Сохранённое место (без trip_id) или событие маршрута (с trip_id и временем). ACCOMMODATION по умолчанию получает is_check_in=true.
// @Tags Spots
// @Accept json
// @Produce json
// @Param request body dto.CreateSpotRequest true "Точка"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spots [post]
func (h *SpotHandler) CreateSpot(c *fiber.Ctx) error {
	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.spotUC.CreateSpot(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// GetSpot godoc
// @Summary Точка по идентификатору
// @Tags Spots
// @Produce json
// @Param id path string true "Идентификатор точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [get]
func (h *SpotHandler) GetSpot(c *fiber.Ctx) error {
	result, err := h.spotUC.GetSpot(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UpdateSpot godoc
// @Summary Частичное обновление точки
// @Description Меняет только переданные поля; photos заменяет последовательность целиком
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор точки"
// @Param request body dto.UpdateSpotRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [patch]
func (h *SpotHandler) UpdateSpot(c *fiber.Ctx) error {
	var req dto.UpdateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.spotUC.UpdateSpot(c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteSpot godoc
// @Summary Удаление точки
// @Description Удаляет точку; если она была выбрана на карте, выбор сбрасывается
// @Tags Spots
// @Produce json
// @Param id path string true "Идентификатор точки"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [delete]
func (h *SpotHandler) DeleteSpot(c *fiber.Ctx) error {
	if err := h.spotUC.DeleteSpot(c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListSaved godoc
// @Summary Сохранённые места
// @Description Точки без поездки, кроме типа ITINERARY
// @Tags Spots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotListResponse}
// @Router /api/v1/spots/saved [get]
func (h *SpotHandler) ListSaved(c *fiber.Ctx) error {
	result := h.spotUC.ListSaved()
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// AddPhoto godoc
// @Summary Добавление фото точки
// @Description Фото добавляется в конец галереи; порядок вставки равен порядку показа
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор точки"
// @Param request body dto.AddPhotoRequest true "Фото (data-URL или ссылка)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/photos [post]
func (h *SpotHandler) AddPhoto(c *fiber.Ctx) error {
	var req dto.AddPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.spotUC.AddPhoto(c.Params("id"), req.Photo)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// RemovePhoto godoc
// @Summary Удаление фото точки по индексу
// @Tags Spots
// @Produce json
// @Param id path string true "Идентификатор точки"
// @Param index path int true "Индекс фото (с нуля)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id}/photos/{index} [delete]
func (h *SpotHandler) RemovePhoto(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Photo index must be an integer"))
	}

	result, err := h.spotUC.RemovePhoto(c.Params("id"), index)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// SelectSpot godoc
// @Summary Выбор точки на карте
// @Description Держится не больше одной выбранной точки; новый выбор заменяет старый
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body dto.SelectSpotRequest true "Идентификатор точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/selection [put]
func (h *SpotHandler) SelectSpot(c *fiber.Ctx) error {
	var req dto.SelectSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	if err := h.spotUC.Select(req.SpotID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, h.spotUC.Selection(), nil)
}

// GetSelection godoc
// @Summary Текущая выбранная точка
// @Tags Selection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Router /api/v1/spots/selection [get]
func (h *SpotHandler) GetSelection(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.spotUC.Selection(), nil)
}

// ClearSelection godoc
// @Summary Сброс выбора точки
// @Tags Selection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Router /api/v1/spots/selection [delete]
func (h *SpotHandler) ClearSelection(c *fiber.Ctx) error {
	h.spotUC.ClearSelection()
	return utils.SendSuccess(c, h.spotUC.Selection(), nil)
}
