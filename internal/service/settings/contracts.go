package settings

import (
	"context"

	"github.com/m04kA/SMC-StringingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	Get(ctx context.Context) (domain.RawSettings, error)
	Upsert(ctx context.Context, raw domain.RawSettings) error
}

// AccessPolicy определяет, является ли пользователь сотрудником магазина
type AccessPolicy interface {
	IsAdmin(userID int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
