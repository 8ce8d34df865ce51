package occupancy

import "errors"

var (
	// ErrInternal возвращается при ошибках нижележащего хранилища
	ErrInternal = errors.New("occupancy: internal error")
)
