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

// SearchHandler - обработчик автодополнения мест
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Автодополнение мест
// @Description Поиск подсказок мест по текстовому запросу. Запрос дебаунсится на сервере; при более новом запросе ответ приходит с superseded=true и пустым списком. Короткий запрос (меньше 2 символов) сразу возвращает пустой список.
// @Tags Search
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param lat query number false "Широта для смещения результатов к региону"
// @Param lng query number false "Долгота для смещения результатов к региону"
// @Param only_cities query bool false "Возвращать только города и административные единицы" default(false)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query:      c.Query("q"),
		OnlyCities: c.QueryBool("only_cities", false),
	}
	if c.Query("lat") != "" || c.Query("lng") != "" {
		lat := c.QueryFloat("lat")
		lng := c.QueryFloat("lng")
		req.Lat = &lat
		req.Lng = &lng
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
