package update_settings

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

type SettingsService interface {
	SetNotificationEmail(ctx context.Context, email string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
