package occupancy

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Booking, error)
	FindIndefiniteBlocks(ctx context.Context, equipmentID int, date string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
