package get_day_schedule

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-StringingService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date      string                `json:"date"`
	Weekday   int                   `json:"weekday"` // 0 = воскресенье
	IsOpen    bool                  `json:"isOpen"`
	Source    string                `json:"source"`
	Capacity  int                   `json:"capacity"`
	Start     string                `json:"start"`
	End       string                `json:"end"`
	Interval  int                   `json:"interval"`
	Slots     []string              `json:"slots"`
	Exception *domain.ExceptionRule `json:"exception,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	day := resp.Schedule
	return &DayScheduleResponse{
		Date:      day.Date.String(),
		Weekday:   int(day.Date.Weekday()),
		IsOpen:    day.IsOpen,
		Source:    string(day.Source),
		Capacity:  day.Capacity,
		Start:     day.Start.String(),
		End:       day.End.String(),
		Interval:  day.Interval,
		Slots:     slots,
		Exception: resp.Exception,
	}
}
