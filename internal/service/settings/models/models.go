package models

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
)

// UpdateSettingsRequest запрос на замену документа настроек целиком
type UpdateSettingsRequest struct {
	UserID   int64
	Document domain.RawSettings
}

// SettingsResponse нормализованные настройки расписания
type SettingsResponse struct {
	Settings domain.SchedulingSettings `json:"settings"`
	Stored   bool                      `json:"stored"` // false - документа нет, действуют значения по умолчанию
}
