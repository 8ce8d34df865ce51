package delete_booking

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

type BookingService interface {
	Remove(ctx context.Context, key string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
