package reservations

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StringingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями перетяжки
type Service struct {
	reservationRepo ReservationRepository
	access          AccessPolicy
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	access AccessPolicy,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		access:          access,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, сотрудник магазина видит любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if res.UserID != userID && !s.access.IsAdmin(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// Cancel отменяет бронирование
// Владелец отменяет со статусом cancelled_by_user, сотрудник магазина - cancelled_by_shop
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, req.UserID)

	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason is too long for reservation id=%d", id)
		return nil, fmt.Errorf("%w: cancellationReason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем бронирование (внутри транзакции строка блокируется)
		res, err := s.getReservation(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		// Определяем статус отмены в зависимости от прав доступа
		var cancelStatus domain.ReservationStatus
		if res.UserID == req.UserID {
			cancelStatus = domain.StatusCancelledByUser
		} else if s.access.IsAdmin(req.UserID) {
			cancelStatus = domain.StatusCancelledByShop
		} else {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, id)
			return ErrAccessDenied
		}

		// Проверяем, можно ли отменить бронирование
		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
			return ErrCannotCancel
		}

		if err := s.reservationRepo.Cancel(txCtx, id, cancelStatus, req.CancellationReason); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%d not found during cancellation", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		res.Status = cancelStatus
		res.CancellationReason = req.CancellationReason
		result = res
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrAccessDenied) ||
			errors.Is(err, ErrCannotCancel) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("Cancel: transaction failed for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", id, result.Status)
	return models.FromDomainReservation(result), nil
}

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}
