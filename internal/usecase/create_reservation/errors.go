package create_reservation

import (
	"errors"

	"github.com/m04kA/SMC-StringingService/internal/scheduling"
)

var (
	// ErrOutOfWindow возвращается, когда дата вне окна бронирования (*scheduling.WindowError)
	ErrOutOfWindow = scheduling.ErrOutOfWindow

	// ErrShopClosed возвращается, когда магазин не работает в указанную дату
	ErrShopClosed = errors.New("create_reservation: shop is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает со слотом или диапазон выходит за конец дня
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда хотя бы один слот диапазона полностью занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
