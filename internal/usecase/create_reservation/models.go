package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// Options параметры use case, задаются из конфигурации сервиса
type Options struct {
	Location   *time.Location        // Часовой пояс магазина
	SpanPolicy scheduling.SpanPolicy // Политика подсчета устаревших диапазонов
}

// Request модель запроса на создание бронирования перетяжки
type Request struct {
	UserID        int64            // ID пользователя
	Date          types.Date       // Дата визита
	PreferredTime types.TimeString // Время первого слота (например, "10:30")
	SlotSpanCount int              // Сколько подряд идущих слотов занять (0 = 1)
	RacketModel   *string          // Модель ракетки (опционально)
	StringName    *string          // Струна (опционально)
	TensionLbs    *int             // Натяжение в фунтах (опционально)
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	Date          types.Date
	PreferredTime types.TimeString
	SlotSpanCount int
	Slots         []types.TimeString // Слоты, которые занимает бронирование
	Status        string
	RacketModel   *string
	StringName    *string
	TensionLbs    *int
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
