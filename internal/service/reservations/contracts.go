package reservations

import (
	"context"

	"github.com/m04kA/SMC-StringingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason *string) error
}

// AccessPolicy определяет, является ли пользователь сотрудником магазина
type AccessPolicy interface {
	IsAdmin(userID int64) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
