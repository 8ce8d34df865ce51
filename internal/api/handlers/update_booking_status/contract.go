package update_booking_status

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, key string, requested domain.BookingStatus, actor domain.Actor) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
