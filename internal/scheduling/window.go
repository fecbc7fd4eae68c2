package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// WindowResult is the outcome of a booking-window check.
type WindowResult struct {
	OK         bool
	WindowDays int
	Today      types.Date
	MaxDate    types.Date
	Message    string
}

// ValidateBookingWindow checks today <= date <= today+windowDays.
// today must already be expressed in the service's civil calendar.
func ValidateBookingWindow(settings domain.SchedulingSettings, date, today types.Date) WindowResult {
	windowDays := clamp(settings.BookingWindowDays, domain.MinBookingWindowDays, domain.MaxBookingWindowDays)
	maxDate := today.AddDays(windowDays)

	result := WindowResult{
		OK:         !date.Before(today) && !date.After(maxDate),
		WindowDays: windowDays,
		Today:      today,
		MaxDate:    maxDate,
	}
	if !result.OK {
		result.Message = windowMessage(windowDays)
	}
	return result
}

func windowMessage(windowDays int) string {
	return fmt.Sprintf("Запись доступна только на ближайшие %d дн.", windowDays)
}
