package quota

import "errors"

var (
	// ErrQuotaExceeded возвращается, когда превышен лимит активных слотов
	ErrQuotaExceeded = errors.New("quota: active slot limit exceeded")

	// ErrRateLimited возвращается при превышении лимита заявок за окно времени
	ErrRateLimited = errors.New("quota: too many requests in the rate-limit window")

	// ErrInternal возвращается при ошибках нижележащего хранилища
	ErrInternal = errors.New("quota: internal error")
)
