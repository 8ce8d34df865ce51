package settings

import "errors"

var (
	// ErrUnauthorized возвращается, когда операция требует прав администратора
	ErrUnauthorized = errors.New("settings: administrator privileges required")

	// ErrInternal возвращается при ошибках нижележащего хранилища
	ErrInternal = errors.New("settings: internal error")
)
