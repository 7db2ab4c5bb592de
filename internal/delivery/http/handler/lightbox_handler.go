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

// LightboxHandler - обработчик фотогалереи
type LightboxHandler struct {
	lightboxUC *usecase.LightboxUseCase
	logger     *zap.Logger
}

// NewLightboxHandler - создание нового LightboxHandler
func NewLightboxHandler(lightboxUC *usecase.LightboxUseCase, logger *zap.Logger) *LightboxHandler {
	return &LightboxHandler{
		lightboxUC: lightboxUC,
		logger:     logger,
	}
}

// Open godoc
// @Summary Открытие галереи фото точки
// @Tags Lightbox
// @Accept json
// @Produce json
// @Param request body dto.OpenLightboxRequest true "Точка и стартовый индекс"
// @Success 200 {object} utils.SuccessResponse{data=dto.LightboxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/lightbox/open [post]
func (h *LightboxHandler) Open(c *fiber.Ctx) error {
	var req dto.OpenLightboxRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.lightboxUC.Open(req.SpotID, req.Index)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Next godoc
// @Summary Следующее фото
// @Description С последнего фото циклически переходит на первое
// @Tags Lightbox
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LightboxResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/lightbox/next [post]
func (h *LightboxHandler) Next(c *fiber.Ctx) error {
	result, err := h.lightboxUC.Next()
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Prev godoc
// @Summary Предыдущее фото
// @Description С первого фото циклически переходит на последнее
// @Tags Lightbox
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LightboxResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/lightbox/prev [post]
func (h *LightboxHandler) Prev(c *fiber.Ctx) error {
	result, err := h.lightboxUC.Prev()
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Close godoc
// @Summary Закрытие галереи
// @Tags Lightbox
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LightboxResponse}
// @Router /api/v1/lightbox/close [post]
func (h *LightboxHandler) Close(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.lightboxUC.Close(), nil)
}

// State godoc
// @Summary Текущее состояние галереи
// @Tags Lightbox
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LightboxResponse}
// @Router /api/v1/lightbox [get]
func (h *LightboxHandler) State(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.lightboxUC.State(), nil)
}
