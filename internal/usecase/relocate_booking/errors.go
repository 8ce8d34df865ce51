package relocate_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных координатах назначения
	ErrInvalidInput = errors.New("relocate_booking: invalid input data")

	// ErrUnauthorized возвращается, когда перенос выполняет не администратор
	ErrUnauthorized = errors.New("relocate_booking: administrator privileges required")

	// ErrBookingNotFound возвращается, когда исходная запись не найдена
	ErrBookingNotFound = errors.New("relocate_booking: booking not found")

	// ErrSlotOccupied возвращается, когда целевой слот занят
	ErrSlotOccupied = errors.New("relocate_booking: target slot is occupied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("relocate_booking: internal error")
)
