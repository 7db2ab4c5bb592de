package usecase

import (
	"time"

	"github.com/wanderplan/internal/pkg/calendar"
	"github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/usecase/dto"
)

// CalendarUseCase - сетка месяца для виджета выбора даты
type CalendarUseCase struct{}

// NewCalendarUseCase - создание нового CalendarUseCase
func NewCalendarUseCase() *CalendarUseCase {
	return &CalendarUseCase{}
}

// MonthGrid - сетка месяца с отключёнными днями до minDate (опционально)
func (uc *CalendarUseCase) MonthGrid(year, month int, minDate string) (*dto.CalendarResponse, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
			"year":  year,
			"month": month,
		})
	}

	var min *time.Time
	if minDate != "" {
		d, err := calendar.ParseLocalDate(minDate)
		if err != nil {
			return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"field": "min_date",
				"value": minDate,
			})
		}
		min = &d
	}

	m := time.Month(month)
	return &dto.CalendarResponse{
		Year:         year,
		Month:        month,
		DaysInMonth:  calendar.DaysInMonth(year, m),
		FirstWeekday: calendar.FirstWeekday(year, m),
		Cells:        calendar.MonthGrid(year, m, min),
	}, nil
}
