package scheduling

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// dayRule inspects the date and, when it applies, decides the schedule.
// The first rule that returns true wins.
type dayRule func(settings *domain.SchedulingSettings, date types.Date, day *domain.DaySchedule) bool

// dayRules in precedence order: exceptions beat holidays, holidays beat the weekly mask.
var dayRules = []dayRule{
	exceptionRule,
	holidayRule,
	weeklyRule,
}

// ResolveDaySchedule merges defaults, the weekly mask, holidays and
// date exceptions into the operating schedule of one date.
func ResolveDaySchedule(settings domain.SchedulingSettings, date types.Date) domain.DaySchedule {
	day := domain.DaySchedule{
		Date:     date,
		Capacity: clamp(settings.Capacity, domain.MinCapacity, domain.MaxCapacity),
		Start:    settings.Start,
		End:      settings.End,
		Interval: clamp(settings.Interval, domain.MinIntervalMinutes, domain.MaxIntervalMinutes),
	}

	for _, rule := range dayRules {
		if rule(&settings, date, &day) {
			break
		}
	}
	return day
}

func exceptionRule(settings *domain.SchedulingSettings, date types.Date, day *domain.DaySchedule) bool {
	exc, ok := settings.ExceptionFor(date)
	if !ok {
		return false
	}

	if exc.Closed {
		day.IsOpen = false
		day.Source = domain.SourceExceptionClosed
		return true
	}

	day.IsOpen = true
	day.Source = domain.SourceExceptionOpen
	if exc.Start != nil {
		day.Start = *exc.Start
	}
	if exc.End != nil {
		day.End = *exc.End
	}
	if exc.Interval != nil {
		day.Interval = clamp(*exc.Interval, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if exc.Capacity != nil {
		day.Capacity = clamp(*exc.Capacity, domain.MinCapacity, domain.MaxCapacity)
	}
	return true
}

func holidayRule(settings *domain.SchedulingSettings, date types.Date, day *domain.DaySchedule) bool {
	if !settings.IsHoliday(date) {
		return false
	}
	day.IsOpen = false
	day.Source = domain.SourceHoliday
	return true
}

func weeklyRule(settings *domain.SchedulingSettings, date types.Date, day *domain.DaySchedule) bool {
	day.IsOpen = settings.IsBusinessDay(int(date.Weekday()))
	if day.IsOpen {
		day.Source = domain.SourceWeekly
	} else {
		day.Source = domain.SourceWeeklyClosed
	}
	return true
}
