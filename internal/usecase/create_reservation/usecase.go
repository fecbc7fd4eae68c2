package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/pkg/metrics"
	"github.com/m04kA/SMC-StringingService/pkg/ptr"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// UseCase use case для создания бронирования перетяжки
type UseCase struct {
	settingsRepo    SettingsRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
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
	txManager TransactionManager,
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
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		location:        location,
		spanPolicy:      opts.SpanPolicy,
	}
}

// Execute выполняет use case создания бронирования
// Доступность слотов перепроверяется внутри сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, date=%s, time=%s, span=%d",
		req.UserID, req.Date, req.PreferredTime, req.SlotSpanCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservation(metrics.ReservationResultRejected)
		return nil, err
	}

	// 2. "Сегодня" в часовом поясе магазина
	today := types.DateOf(uc.timeProvider.Now(), uc.location)
	count := spanCount(req)

	var result *domain.Reservation
	var span domain.SlotSpan

	// 3. Все проверки и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем настройки
		raw, err := uc.settingsRepo.Get(txCtx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateReservation: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings := scheduling.ResolveSettings(raw)

		// 3.2. Окно бронирования
		window := scheduling.ValidateBookingWindow(settings, req.Date, today)
		if !window.OK {
			uc.logger.Warn("CreateReservation: date=%s is out of window (days=%d)", req.Date, window.WindowDays)
			return &scheduling.WindowError{WindowDays: window.WindowDays, Message: window.Message}
		}

		// 3.3. Расписание дня
		day := scheduling.ResolveDaySchedule(settings, req.Date)
		if !day.IsOpen {
			uc.logger.Warn("CreateReservation: shop is closed on %s (%s)", req.Date, day.Source)
			return ErrShopClosed
		}

		// 3.4. Диапазон слотов
		allTimes := scheduling.GenerateSlots(day)
		var ok bool
		span, ok = scheduling.ComputeSpan(allTimes, req.PreferredTime, count)
		if !ok {
			uc.logger.Warn("CreateReservation: time=%s with span=%d does not fit slots of %s",
				req.PreferredTime, count, req.Date)
			return fmt.Errorf("%w: %s x%d", ErrInvalidTimeSlot, req.PreferredTime, count)
		}

		// 3.5. Активные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.6. Проверяем, что ни один слот диапазона не заполнен
		occupancy := scheduling.CountOccupancy(req.Date, allTimes, reservations, uc.spanPolicy)
		if full := occupancy.FullSlots(span, day.Capacity); len(full) > 0 {
			uc.logger.Warn("CreateReservation: slots %v are full (capacity=%d)", full, day.Capacity)
			return fmt.Errorf("%w: %v", ErrSlotNotAvailable, full)
		}

		// 3.7. Создаем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:        req.UserID,
			Date:          req.Date,
			PreferredTime: req.PreferredTime,
			SlotSpanCount: ptr.Ptr(span.Len()),
			Status:        domain.StatusConfirmed,
			RacketModel:   req.RacketModel,
			StringName:    req.StringName,
			TensionLbs:    req.TensionLbs,
			Notes:         req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.IncReservation(resultLabel(err))
		if errors.Is(err, ErrOutOfWindow) || errors.Is(err, ErrShopClosed) ||
			errors.Is(err, ErrInvalidTimeSlot) || errors.Is(err, ErrSlotNotAvailable) ||
			errors.Is(err, ErrInternal) {
			return nil, err
		}
		// Ошибки begin/commit (в том числе конфликт сериализации)
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncReservation(metrics.ReservationResultCreated)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d (%v)", result.ID, span.Slots)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		Date:          result.Date,
		PreferredTime: result.PreferredTime,
		SlotSpanCount: result.SpanCount(),
		Slots:         span.Slots,
		Status:        string(result.Status),
		RacketModel:   result.RacketModel,
		StringName:    result.StringName,
		TensionLbs:    result.TensionLbs,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return metrics.ReservationResultUnavailable
	case errors.Is(err, ErrOutOfWindow), errors.Is(err, ErrShopClosed), errors.Is(err, ErrInvalidTimeSlot):
		return metrics.ReservationResultRejected
	default:
		return metrics.ReservationResultError
	}
}
