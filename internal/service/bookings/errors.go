package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrUnauthorized возвращается, когда операция требует прав администратора
	ErrUnauthorized = errors.New("bookings: administrator privileges required")

	// ErrForbidden возвращается при недопустимом переходе статуса
	ErrForbidden = errors.New("bookings: status transition not allowed")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrInternal возвращается при ошибках нижележащего хранилища
	ErrInternal = errors.New("bookings: internal error")
)
