package settings

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет прав на изменение настроек
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidSettings возвращается, когда документ настроек не проходит строгую проверку
	ErrInvalidSettings = errors.New("invalid scheduling settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
