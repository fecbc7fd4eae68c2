package get_slot_summary

import (
	"errors"

	"github.com/m04kA/SMC-StringingService/internal/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOutOfWindow возвращается, когда дата вне окна бронирования.
	// Конкретная ошибка имеет тип *scheduling.WindowError и несет текст для пользователя
	ErrOutOfWindow = scheduling.ErrOutOfWindow

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
