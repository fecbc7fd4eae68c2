package get_slot_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	// Get возвращает сырой документ настроек
	Get(ctx context.Context) (domain.RawSettings, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetActiveByDate получает бронирования на дату, которые занимают слоты
	GetActiveByDate(ctx context.Context, date types.Date) ([]domain.Reservation, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncSlotSummary(result string)
	AddStaleSpanFallbacks(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
