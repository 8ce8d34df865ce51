package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена по ключу
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда ключ уже занят живой записью
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrNoFieldsToUpdate возвращается при пустом частичном обновлении
	ErrNoFieldsToUpdate = errors.New("booking.repository: no fields to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
