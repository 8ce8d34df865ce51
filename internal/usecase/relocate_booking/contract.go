package relocate_booking

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Booking, error)
	UpdateFields(ctx context.Context, key string, fields bookingRepo.UpdateFields) error
	Rename(ctx context.Context, oldKey string, b *domain.Booking) error
}

// OccupancyResolver интерфейс сервиса занятости слотов
type OccupancyResolver interface {
	Resolve(ctx context.Context, equipmentID int, date, timeSlotID string) (domain.Slot, error)
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
