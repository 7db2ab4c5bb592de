package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/pkg/utils"
	"github.com/wanderplan/internal/usecase"
)

// CalendarHandler - обработчик календарной сетки
type CalendarHandler struct {
	calendarUC *usecase.CalendarUseCase
	logger     *zap.Logger
}

// NewCalendarHandler - создание нового CalendarHandler
func NewCalendarHandler(calendarUC *usecase.CalendarUseCase, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarUC: calendarUC,
		logger:     logger,
	}
}

// MonthGrid godoc
// @Summary Сетка месяца для выбора даты
// @Description Ячейки месяца с ведущими пустыми ячейками до первого дня недели (воскресенье = 0). Дни раньше min_date помечены disabled.
// @Tags Calendar
// @Produce json
// @Param year path int true "Год"
// @Param month path int true "Месяц (1-12)"
// @Param min_date query string false "Минимальная дата YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse{data=dto.CalendarResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/calendar/{year}/{month} [get]
func (h *CalendarHandler) MonthGrid(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidDate.WithMessage("Year must be an integer"))
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidDate.WithMessage("Month must be an integer"))
	}

	result, err := h.calendarUC.MonthGrid(year, month, c.Query("min_date"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
