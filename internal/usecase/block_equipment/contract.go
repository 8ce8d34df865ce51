package block_equipment

import (
	"context"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Booking, error)
	ForceUpsert(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, key string) error
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
