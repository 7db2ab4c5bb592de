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

// GenerationHandler - обработчик генерации поездок
type GenerationHandler struct {
	generationUC *usecase.GenerationUseCase
	logger       *zap.Logger
}

// NewGenerationHandler - создание нового GenerationHandler
func NewGenerationHandler(generationUC *usecase.GenerationUseCase, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationUC: generationUC,
		logger:       logger,
	}
}

// Generate godoc
// @Summary Генерация поездки с маршрутом
// @Description Запрашивает у генеративного провайдера маршрут по дням и атомарно сохраняет поездку вместе с точками. При любом сбое провайдера или невалидном документе хранилище не меняется.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.GenerateTripRequest true "Параметры поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.GenerateTripResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trips/generate [post]
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.generationUC.Generate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
