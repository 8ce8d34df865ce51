package get_settings

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

type SettingsService interface {
	NotificationEmail(ctx context.Context, actor domain.Actor) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
