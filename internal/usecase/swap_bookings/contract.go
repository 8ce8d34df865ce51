package swap_bookings

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Booking, error)
	Rename(ctx context.Context, oldKey string, b *domain.Booking) error
	FindOccupiedKeys(ctx context.Context, keys, excludeKeys []string) ([]*domain.Booking, error)
	FindByKeyPrefix(ctx context.Context, prefix string) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
