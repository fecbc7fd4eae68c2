package get_slot_summary

import (
	getSlotSummary "github.com/m04kA/SMC-StringingService/internal/usecase/get_slot_summary"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// SlotSummaryResponse HTTP response model
type SlotSummaryResponse struct {
	Date           string   `json:"date"`
	IsOpen         bool     `json:"isOpen"`
	Capacity       int      `json:"capacity"`
	AllTimes       []string `json:"allTimes"`
	ReservedTimes  []string `json:"reservedTimes"`
	AvailableTimes []string `json:"availableTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotSummary.Response) *SlotSummaryResponse {
	return &SlotSummaryResponse{
		Date:           resp.Date.String(),
		IsOpen:         resp.IsOpen,
		Capacity:       resp.Capacity,
		AllTimes:       timesToStrings(resp.AllTimes),
		ReservedTimes:  timesToStrings(resp.ReservedTimes),
		AvailableTimes: timesToStrings(resp.AvailableTimes),
	}
}

// timesToStrings всегда возвращает не-nil срез, чтобы в JSON был [] вместо null
func timesToStrings(times []types.TimeString) []string {
	result := make([]string, 0, len(times))
	for _, t := range times {
		result = append(result, t.String())
	}
	return result
}
