package create_booking

import (
	"context"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	UpsertIfAvailableOrAbsent(ctx context.Context, b *domain.Booking) error
}

// OccupancyResolver интерфейс сервиса занятости слотов
type OccupancyResolver interface {
	Resolve(ctx context.Context, equipmentID int, date, timeSlotID string) (domain.Slot, error)
}

// QuotaGuard интерфейс сервиса квот
type QuotaGuard interface {
	CheckCreate(ctx context.Context, userEmail string, batchSize int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
