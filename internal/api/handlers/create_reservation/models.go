package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-StringingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date          string  `json:"date"`          // "2026-10-14"
	PreferredTime string  `json:"preferredTime"` // "10:30"
	SlotSpanCount int     `json:"slotSpanCount,omitempty"`
	RacketModel   *string `json:"racketModel,omitempty"`
	StringName    *string `json:"stringName,omitempty"`
	TensionLbs    *int    `json:"tensionLbs,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64    `json:"id"`
	UserID        int64    `json:"userId"`
	Date          string   `json:"date"`
	PreferredTime string   `json:"preferredTime"`
	SlotSpanCount int      `json:"slotSpanCount"`
	Slots         []string `json:"slots"`
	Status        string   `json:"status"`
	RacketModel   *string  `json:"racketModel,omitempty"`
	StringName    *string  `json:"stringName,omitempty"`
	TensionLbs    *int     `json:"tensionLbs,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
// Время не нормализуется: "9:00" не совпадет ни с одним слотом и будет отклонено use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:        userID,
		Date:          date,
		PreferredTime: types.TimeString(r.PreferredTime),
		SlotSpanCount: r.SlotSpanCount,
		RacketModel:   r.RacketModel,
		StringName:    r.StringName,
		TensionLbs:    r.TensionLbs,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &ReservationResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		Date:          resp.Date.String(),
		PreferredTime: resp.PreferredTime.String(),
		SlotSpanCount: resp.SlotSpanCount,
		Slots:         slots,
		Status:        resp.Status,
		RacketModel:   resp.RacketModel,
		StringName:    resp.StringName,
		TensionLbs:    resp.TensionLbs,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
