package scheduling

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// GenerateSlots lists the bookable start times of a day: from start in
// interval steps up to and including end. A closed day has no slots,
// and so does a day whose start is after its end.
func GenerateSlots(day domain.DaySchedule) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if !day.IsOpen {
		return slots
	}

	start, err := day.Start.Minutes()
	if err != nil {
		return slots
	}
	end, err := day.End.Minutes()
	if err != nil {
		return slots
	}
	interval := clamp(day.Interval, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)

	for m := start; m <= end; m += interval {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, label)
	}
	return slots
}
