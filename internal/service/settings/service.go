package settings

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/internal/service/settings/models"
)

// Service сервис для работы с настройками расписания
type Service struct {
	settingsRepo SettingsRepository
	access       AccessPolicy
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, access AccessPolicy, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		access:       access,
		logger:       logger,
	}
}

// GetResolved возвращает нормализованные настройки
// Если документ не сохранен, возвращаются значения по умолчанию
func (s *Service) GetResolved(ctx context.Context) (*models.SettingsResponse, error) {
	raw, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("GetResolved: settings not stored, using defaults")
			return &models.SettingsResponse{Settings: scheduling.DefaultSettings(), Stored: false}, nil
		}
		s.logger.Error("GetResolved: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetResolved - repository error: %v", ErrInternal, err)
	}

	return &models.SettingsResponse{Settings: scheduling.ResolveSettings(raw), Stored: true}, nil
}

// Update заменяет документ настроек целиком
// Доступно только сотрудникам магазина
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating scheduling settings by user=%d", req.UserID)

	// 1. Проверяем права доступа
	if !s.access.IsAdmin(req.UserID) {
		s.logger.Warn("Update: user=%d is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Строгая валидация документа
	if err := validateDocument(req.Document); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем документ как есть
	if err := s.settingsRepo.Upsert(ctx, req.Document); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated scheduling settings by user=%d", req.UserID)
	return &models.SettingsResponse{Settings: scheduling.ResolveSettings(req.Document), Stored: true}, nil
}
