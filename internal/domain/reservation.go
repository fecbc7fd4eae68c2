package domain

import (
	"time"

	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// ReservationStatus represents the status of a string replacement reservation
type ReservationStatus string

const (
	StatusDraft           ReservationStatus = "draft"
	StatusPending         ReservationStatus = "pending"
	StatusConfirmed       ReservationStatus = "confirmed"
	StatusInProgress      ReservationStatus = "in_progress"
	StatusCompleted       ReservationStatus = "completed"
	StatusCancelledByUser ReservationStatus = "cancelled_by_user"
	StatusCancelledByShop ReservationStatus = "cancelled_by_shop"
)

// Reservation represents a booked string replacement
type Reservation struct {
	ID            int64
	UserID        int64
	Date          types.Date
	PreferredTime types.TimeString
	SlotSpanCount *int // NULL for reservations created before multi-slot booking
	Status        ReservationStatus

	RacketModel *string
	StringName  *string
	TensionLbs  *int
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByShop
}

// IsActive returns true if the reservation occupies its slots
func (r *Reservation) IsActive() bool {
	return r.Status != StatusDraft && !r.IsCancelled()
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// SpanCount returns the stored span, or 1 when absent or non-positive
func (r *Reservation) SpanCount() int {
	if r.SlotSpanCount == nil || *r.SlotSpanCount <= 0 {
		return DefaultSpanCount
	}
	return *r.SlotSpanCount
}

// IsValidStatus checks that the status is a known value
func IsValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusDraft, StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelledByUser, StatusCancelledByShop:
		return true
	}
	return false
}
