package get_slot_summary

import (
	"time"

	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// Options параметры use case, задаются из конфигурации сервиса
type Options struct {
	Location   *time.Location        // Часовой пояс магазина, по нему считается "сегодня"
	SpanPolicy scheduling.SpanPolicy // Что делать с бронированиями, чей диапазон слотов больше не вычисляется
}

// Request модель запроса сводки по слотам
type Request struct {
	Date types.Date // Дата, на которую запрашиваются слоты
}

// Response модель ответа со сводкой по слотам
type Response struct {
	Date           types.Date         // Запрошенная дата
	Capacity       int                // Сколько бронирований помещается в один слот
	IsOpen         bool               // Работает ли магазин в эту дату
	AllTimes       []types.TimeString // Все слоты дня
	ReservedTimes  []types.TimeString // Полностью занятые слоты
	AvailableTimes []types.TimeString // Свободные слоты
}
