package domain

import "github.com/m04kA/SMC-StringingService/pkg/types"

// SlotSpan is the contiguous run of generated slots a reservation occupies
type SlotSpan struct {
	Slots      []types.TimeString
	StartIndex int
	EndIndex   int // inclusive
}

// Len returns the number of slots in the span
func (s SlotSpan) Len() int {
	return len(s.Slots)
}

// SlotSummary is the availability answer for one date
type SlotSummary struct {
	Date           types.Date
	Capacity       int
	AllTimes       []types.TimeString
	ReservedTimes  []types.TimeString
	AvailableTimes []types.TimeString
}

// IsEmpty returns true if the day has no bookable slots (closed day)
func (s *SlotSummary) IsEmpty() bool {
	return len(s.AllTimes) == 0
}
