package scheduling

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// Summary is the availability of one date together with the schedule it was derived from.
type Summary struct {
	domain.SlotSummary
	Schedule   domain.DaySchedule
	StaleSpans int
}

// IsClosed reports whether the date offers no slots at all.
func (s *Summary) IsClosed() bool {
	return !s.Schedule.IsOpen || s.IsEmpty()
}

// BuildSummary answers "which slots can still be booked on date".
// The booking window is checked first, so a closed day outside the window
// is reported as out of window. A closed day inside the window is an
// empty, successful summary.
func BuildSummary(settings domain.SchedulingSettings, date, today types.Date, reservations []domain.Reservation, policy SpanPolicy) (*Summary, error) {
	window := ValidateBookingWindow(settings, date, today)
	if !window.OK {
		return nil, &WindowError{WindowDays: window.WindowDays, Message: window.Message}
	}

	day := ResolveDaySchedule(settings, date)
	allTimes := GenerateSlots(day)

	summary := &Summary{
		SlotSummary: domain.SlotSummary{
			Date:           date,
			Capacity:       day.Capacity,
			AllTimes:       allTimes,
			ReservedTimes:  make([]types.TimeString, 0),
			AvailableTimes: make([]types.TimeString, 0),
		},
		Schedule: day,
	}
	if len(allTimes) == 0 {
		return summary, nil
	}

	reserved, stale := FindFullyBooked(date, day.Capacity, allTimes, reservations, policy)
	summary.ReservedTimes = reserved
	summary.StaleSpans = stale
	summary.AvailableTimes = subtract(allTimes, reserved)

	return summary, nil
}

// subtract keeps the order of all.
func subtract(all, remove []types.TimeString) []types.TimeString {
	skip := make(map[types.TimeString]bool, len(remove))
	for _, t := range remove {
		skip[t] = true
	}
	rest := make([]types.TimeString, 0, len(all))
	for _, t := range all {
		if !skip[t] {
			rest = append(rest, t)
		}
	}
	return rest
}
