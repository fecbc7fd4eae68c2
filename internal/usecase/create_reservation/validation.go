package create_reservation

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-StringingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PreferredTime.IsZero() {
		return fmt.Errorf("%w: preferredTime is required", ErrInvalidInput)
	}

	// Время должно совпадать с меткой слота символ в символ, поэтому требуем канонический HH:MM
	if err := req.PreferredTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid preferredTime format: %v", ErrInvalidInput, err)
	}

	if req.SlotSpanCount < 0 || req.SlotSpanCount > domain.MaxSpanCount {
		return fmt.Errorf("%w: slotSpanCount must be between 1 and %d", ErrInvalidInput, domain.MaxSpanCount)
	}

	if req.TensionLbs != nil && (*req.TensionLbs <= 0 || *req.TensionLbs > domain.MaxTensionLbs) {
		return fmt.Errorf("%w: tensionLbs must be between 1 and %d", ErrInvalidInput, domain.MaxTensionLbs)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// spanCount 0 означает один слот
func spanCount(req *Request) int {
	if req.SlotSpanCount <= 0 {
		return domain.DefaultSpanCount
	}
	return req.SlotSpanCount
}
