// Package settings manages administrator settings. The only setting today is
// the notification recipient email; the engine exposes it as a read-only
// derived view and never delivers anything itself.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdrianLinares/microreserva/internal/domain"
	settingsRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/settings"
)

// NotificationEmailKey ключ настройки адреса уведомлений
const NotificationEmailKey = "notification_email"

// Service сервис админских настроек
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// NotificationEmail returns the configured recipient address, empty when
// none is configured yet.
func (s *Service) NotificationEmail(ctx context.Context, actor domain.Actor) (string, error) {
	if !actor.Admin {
		return "", ErrUnauthorized
	}

	value, err := s.repo.Get(ctx, NotificationEmailKey)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return "", nil
		}
		s.logger.Error("NotificationEmail: repository error: %v", err)
		return "", fmt.Errorf("%w: NotificationEmail - repository error: %v", ErrInternal, err)
	}
	return value, nil
}

// SetNotificationEmail stores the recipient address.
func (s *Service) SetNotificationEmail(ctx context.Context, email string, actor domain.Actor) error {
	if !actor.Admin {
		return ErrUnauthorized
	}

	if err := s.repo.Upsert(ctx, NotificationEmailKey, email); err != nil {
		s.logger.Error("SetNotificationEmail: repository error: %v", err)
		return fmt.Errorf("%w: SetNotificationEmail - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("SetNotificationEmail: notification email updated")
	return nil
}
