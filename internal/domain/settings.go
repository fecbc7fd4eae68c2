package domain

import (
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// RawSettings is the settings document exactly as stored: loosely typed JSON.
// Values may be missing, mistyped or non-finite; the resolver normalizes them.
type RawSettings map[string]interface{}

// SchedulingSettings is the fully defaulted scheduling configuration.
type SchedulingSettings struct {
	Capacity          int              `json:"capacity"`
	BusinessDays      []int            `json:"businessDays"`
	Start             types.TimeString `json:"start"`
	End               types.TimeString `json:"end"`
	Interval          int              `json:"interval"`
	Holidays          []types.Date     `json:"holidays"`
	Exceptions        []ExceptionRule  `json:"exceptions"`
	BookingWindowDays int              `json:"bookingWindowDays"`
}

// ExceptionRule overrides the schedule for one date.
// Nil fields fall back to the defaults resolved for that date.
type ExceptionRule struct {
	Date     types.Date        `json:"date"`
	Closed   bool              `json:"closed"`
	Start    *types.TimeString `json:"start,omitempty"`
	End      *types.TimeString `json:"end,omitempty"`
	Interval *int              `json:"interval,omitempty"`
	Capacity *int              `json:"capacity,omitempty"`
	Reason   string            `json:"reason,omitempty"`
}

// IsBusinessDay reports whether the weekday (Sunday = 0) is in the weekly mask.
func (s *SchedulingSettings) IsBusinessDay(weekday int) bool {
	for _, d := range s.BusinessDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsHoliday reports whether the date is in the holiday list.
func (s *SchedulingSettings) IsHoliday(date types.Date) bool {
	for _, h := range s.Holidays {
		if h.Equal(date) {
			return true
		}
	}
	return false
}

// ExceptionFor returns the effective exception for a date, if any.
// The list is deduplicated by the resolver, so the first match is the only one.
func (s *SchedulingSettings) ExceptionFor(date types.Date) (ExceptionRule, bool) {
	for _, e := range s.Exceptions {
		if e.Date.Equal(date) {
			return e, true
		}
	}
	return ExceptionRule{}, false
}

// ScheduleSource names the rule that decided a day's schedule.
type ScheduleSource string

const (
	SourceExceptionClosed ScheduleSource = "exception_closed"
	SourceExceptionOpen   ScheduleSource = "exception_open"
	SourceHoliday         ScheduleSource = "holiday"
	SourceWeekly          ScheduleSource = "weekly"
	SourceWeeklyClosed    ScheduleSource = "weekly_closed"
)

// DaySchedule is the resolved operating schedule for one date.
type DaySchedule struct {
	Date     types.Date
	IsOpen   bool
	Capacity int
	Start    types.TimeString
	End      types.TimeString
	Interval int
	Source   ScheduleSource
}
