package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
)

// UseCase use case предпросмотра расписания дня (окно бронирования не проверяется)
type UseCase struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute выполняет use case предпросмотра расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем и нормализуем настройки
	raw, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetDaySchedule: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	settings := scheduling.ResolveSettings(raw)

	// 3. Расписание и слоты
	day := scheduling.ResolveDaySchedule(settings, req.Date)
	resp := &Response{
		Schedule: day,
		Slots:    scheduling.GenerateSlots(day),
	}
	if exc, ok := settings.ExceptionFor(req.Date); ok {
		resp.Exception = &exc
	}

	uc.logger.Info("GetDaySchedule: date=%s, open=%t, source=%s, slots=%d",
		req.Date, day.IsOpen, day.Source, len(resp.Slots))

	return resp, nil
}
