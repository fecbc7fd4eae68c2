package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда документ настроек еще не сохранен
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrInvalidDocument возвращается, когда документ не является JSON объектом
	ErrInvalidDocument = errors.New("settings.repository: invalid settings document")
)
