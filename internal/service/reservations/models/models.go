package models

import (
	"time"

	"github.com/m04kA/SMC-StringingService/internal/domain"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	Date          string  `json:"date"`          // "2026-10-14"
	PreferredTime string  `json:"preferredTime"` // "10:30"
	SlotSpanCount int     `json:"slotSpanCount"`
	Status        string  `json:"status"`
	RacketModel   *string `json:"racketModel,omitempty"`
	StringName    *string `json:"stringName,omitempty"`
	TensionLbs    *int    `json:"tensionLbs,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		Date:               r.Date.String(),
		PreferredTime:      r.PreferredTime.String(),
		SlotSpanCount:      r.SpanCount(),
		Status:             string(r.Status),
		RacketModel:        r.RacketModel,
		StringName:         r.StringName,
		TensionLbs:         r.TensionLbs,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
