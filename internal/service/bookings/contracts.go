package bookings

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	UpdateFields(ctx context.Context, key string, fields bookingRepo.UpdateFields) error
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
