package quota

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория записей слотов
type BookingRepository interface {
	CountActiveByEmail(ctx context.Context, email string) (int, error)
	CountRecentByEmail(ctx context.Context, email string, sinceMillis int64) (int, error)
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
