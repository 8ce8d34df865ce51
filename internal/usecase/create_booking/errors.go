package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnauthorized возвращается при попытке привилегированного создания без прав
	ErrUnauthorized = errors.New("create_booking: administrator privileges required")

	// ErrSlotOccupied возвращается, когда запрошенный слот уже занят
	ErrSlotOccupied = errors.New("create_booking: slot is occupied")

	// ErrQuotaExceeded возвращается при превышении лимита активных слотов
	ErrQuotaExceeded = errors.New("create_booking: active slot limit exceeded")

	// ErrRateLimited возвращается при превышении лимита заявок в час
	ErrRateLimited = errors.New("create_booking: too many requests")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
