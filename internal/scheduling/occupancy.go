package scheduling

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// SpanPolicy decides what to do with a reservation whose stored span no
// longer fits the current slot list (settings changed after booking).
type SpanPolicy int

const (
	// SpanPolicyFallback credits only the preferred time when it still exists
	SpanPolicyFallback SpanPolicy = iota
	// SpanPolicyStrict ignores such reservations entirely
	SpanPolicyStrict
)

// Occupancy holds per-slot reservation counts for one date.
type Occupancy struct {
	Counts map[types.TimeString]int
	// StaleSpans is the number of reservations whose span could not be computed
	StaleSpans int
}

// CountOccupancy expands every active reservation of the date into its span
// and accumulates counts. Reservations with a non-zero date different from
// date are skipped.
func CountOccupancy(date types.Date, allTimes []types.TimeString, reservations []domain.Reservation, policy SpanPolicy) Occupancy {
	occ := Occupancy{Counts: make(map[types.TimeString]int, len(allTimes))}
	if len(allTimes) == 0 {
		return occ
	}

	known := make(map[types.TimeString]bool, len(allTimes))
	for _, t := range allTimes {
		known[t] = true
	}

	for i := range reservations {
		r := &reservations[i]
		if !r.IsActive() {
			continue
		}
		if !r.Date.IsZero() && !date.IsZero() && !r.Date.Equal(date) {
			continue
		}

		span, ok := ComputeSpan(allTimes, r.PreferredTime, r.SpanCount())
		if ok {
			for _, t := range span.Slots {
				occ.Counts[t]++
			}
			continue
		}

		occ.StaleSpans++
		if policy == SpanPolicyFallback && known[r.PreferredTime] {
			occ.Counts[r.PreferredTime]++
		}
	}
	return occ
}

// IsFull reports whether a slot has reached capacity.
func (o Occupancy) IsFull(t types.TimeString, capacity int) bool {
	return o.Counts[t] >= capacity
}

// FullSlots returns the slots of a span that are already at capacity.
func (o Occupancy) FullSlots(span domain.SlotSpan, capacity int) []types.TimeString {
	full := make([]types.TimeString, 0)
	for _, t := range span.Slots {
		if o.IsFull(t, capacity) {
			full = append(full, t)
		}
	}
	return full
}

// FindFullyBooked returns the slots whose occupancy reached capacity,
// in ascending order, along with the number of stale spans seen.
func FindFullyBooked(date types.Date, capacity int, allTimes []types.TimeString, reservations []domain.Reservation, policy SpanPolicy) ([]types.TimeString, int) {
	reserved := make([]types.TimeString, 0)
	if len(allTimes) == 0 || capacity <= 0 {
		return reserved, 0
	}

	occ := CountOccupancy(date, allTimes, reservations, policy)
	// allTimes is generated in ascending order
	for _, t := range allTimes {
		if occ.IsFull(t, capacity) {
			reserved = append(reserved, t)
		}
	}
	return reserved, occ.StaleSpans
}
