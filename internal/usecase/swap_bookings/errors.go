package swap_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("swap_bookings: invalid input data")

	// ErrSameBooking возвращается при попытке обменять запись саму с собой
	ErrSameBooking = errors.New("swap_bookings: identical swap targets")

	// ErrUnauthorized возвращается, когда обмен выполняет не администратор
	ErrUnauthorized = errors.New("swap_bookings: administrator privileges required")

	// ErrBookingNotFound возвращается, когда одна из записей не найдена
	ErrBookingNotFound = errors.New("swap_bookings: booking not found")

	// ErrBlockedBooking возвращается при попытке обменять блокировку
	ErrBlockedBooking = errors.New("swap_bookings: blocked bookings cannot be swapped")

	// ErrSwapConflict возвращается, когда целевой ключ занят третьей записью
	ErrSwapConflict = errors.New("swap_bookings: swap would collide with another booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("swap_bookings: internal error")
)
