package get_slot_summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/pkg/metrics"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// UseCase use case для получения сводки по слотам на дату
type UseCase struct {
	settingsRepo    SettingsRepository
	reservationRepo ReservationRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	location        *time.Location
	spanPolicy      scheduling.SpanPolicy
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		settingsRepo:    settingsRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		location:        location,
		spanPolicy:      opts.SpanPolicy,
	}
}

// Execute выполняет use case получения сводки по слотам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotSummary: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetSlotSummary: date=%s", req.Date)

	// 2. "Сегодня" считаем в часовом поясе магазина
	today := types.DateOf(uc.timeProvider.Now(), uc.location)

	// 3. Получаем настройки; если документа нет, работаем на дефолтах
	raw, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetSlotSummary: failed to get settings: %v", err)
		uc.metrics.IncSlotSummary(metrics.SummaryResultError)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	settings := scheduling.ResolveSettings(raw)

	// 4. Проверяем окно бронирования до чтения бронирований
	if window := scheduling.ValidateBookingWindow(settings, req.Date, today); !window.OK {
		uc.logger.Warn("GetSlotSummary: date=%s is out of window (today=%s, days=%d)",
			req.Date, today, window.WindowDays)
		uc.metrics.IncSlotSummary(metrics.SummaryResultOutOfWindow)
		return nil, &scheduling.WindowError{WindowDays: window.WindowDays, Message: window.Message}
	}

	// 5. Закрытый день: бронирования не нужны
	day := scheduling.ResolveDaySchedule(settings, req.Date)
	var reservations []domain.Reservation
	if day.IsOpen {
		reservations, err = uc.reservationRepo.GetActiveByDate(ctx, req.Date)
		if err != nil {
			uc.logger.Error("GetSlotSummary: failed to get reservations for date=%s: %v", req.Date, err)
			uc.metrics.IncSlotSummary(metrics.SummaryResultError)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
	}

	// 6. Собираем сводку
	summary, err := scheduling.BuildSummary(settings, req.Date, today, reservations, uc.spanPolicy)
	if err != nil {
		uc.logger.Error("GetSlotSummary: failed to build summary: %v", err)
		uc.metrics.IncSlotSummary(metrics.SummaryResultError)
		return nil, fmt.Errorf("%w: failed to build summary: %v", ErrInternal, err)
	}

	if summary.StaleSpans > 0 {
		uc.logger.Warn("GetSlotSummary: date=%s has %d reservations with unresolvable span", req.Date, summary.StaleSpans)
		uc.metrics.AddStaleSpanFallbacks(summary.StaleSpans)
	}

	if summary.IsClosed() {
		uc.metrics.IncSlotSummary(metrics.SummaryResultClosed)
	} else {
		uc.metrics.IncSlotSummary(metrics.SummaryResultOK)
	}

	uc.logger.Info("GetSlotSummary: date=%s, slots=%d, reserved=%d, available=%d",
		req.Date, len(summary.AllTimes), len(summary.ReservedTimes), len(summary.AvailableTimes))

	return &Response{
		Date:           summary.Date,
		Capacity:       summary.Capacity,
		IsOpen:         summary.Schedule.IsOpen,
		AllTimes:       summary.AllTimes,
		ReservedTimes:  summary.ReservedTimes,
		AvailableTimes: summary.AvailableTimes,
	}, nil
}
