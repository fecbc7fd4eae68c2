package get_day_schedule

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// Request модель запроса предпросмотра расписания дня
type Request struct {
	Date types.Date
}

// Response итоговое расписание дня и его слоты
type Response struct {
	Schedule  domain.DaySchedule
	Slots     []types.TimeString
	Exception *domain.ExceptionRule // Исключение на эту дату, если задано
}
