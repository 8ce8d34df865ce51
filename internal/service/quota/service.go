// Package quota enforces the per-user limits on pending creations: the
// active-slot quota and the submission rate limit. Administrator-originated
// creations are exempt; the caller decides and simply skips the check.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

// Limits пороги проверок. Zero-значения заменяются константами домена.
type Limits struct {
	MaxSlotsPerPerson   int
	RateLimitMaxInserts int
	RateLimitWindow     int // minutes
}

func (l Limits) withDefaults() Limits {
	if l.MaxSlotsPerPerson <= 0 {
		l.MaxSlotsPerPerson = domain.MaxSlotsPerPerson
	}
	if l.RateLimitMaxInserts <= 0 {
		l.RateLimitMaxInserts = domain.RateLimitMaxInserts
	}
	if l.RateLimitWindow <= 0 {
		l.RateLimitWindow = int(domain.RateLimitWindow.Minutes())
	}
	return l
}

// Service сервис проверки квот пользователя
type Service struct {
	repo   BookingRepository
	clock  TimeProvider
	limits Limits
	logger Logger
}

// NewService создает новый экземпляр сервиса квот
func NewService(repo BookingRepository, clock TimeProvider, limits Limits, logger Logger) *Service {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &Service{
		repo:   repo,
		clock:  clock,
		limits: limits.withDefaults(),
		logger: logger,
	}
}

// CheckCreate validates a pending creation of batchSize slots for the given
// user. The quota is checked against the whole batch, not one slot at a
// time. Errors carry the offending count for user-facing messaging.
func (s *Service) CheckCreate(ctx context.Context, userEmail string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 1
	}

	active, err := s.repo.CountActiveByEmail(ctx, userEmail)
	if err != nil {
		s.logger.Error("CheckCreate: failed to count active bookings for %s: %v", userEmail, err)
		return fmt.Errorf("%w: CheckCreate - count active bookings: %v", ErrInternal, err)
	}
	if active+batchSize > s.limits.MaxSlotsPerPerson {
		s.logger.Warn("CheckCreate: quota exceeded for %s: %d active, %d requested, max %d",
			userEmail, active, batchSize, s.limits.MaxSlotsPerPerson)
		return fmt.Errorf("%w: %d active bookings, %d requested, maximum is %d",
			ErrQuotaExceeded, active, batchSize, s.limits.MaxSlotsPerPerson)
	}

	window := time.Duration(s.limits.RateLimitWindow) * time.Minute
	since := s.clock.Now().Add(-window).UnixMilli()
	recent, err := s.repo.CountRecentByEmail(ctx, userEmail, since)
	if err != nil {
		s.logger.Error("CheckCreate: failed to count recent inserts for %s: %v", userEmail, err)
		return fmt.Errorf("%w: CheckCreate - count recent inserts: %v", ErrInternal, err)
	}
	if recent >= s.limits.RateLimitMaxInserts {
		s.logger.Warn("CheckCreate: rate limited %s: %d inserts in the last %d minutes",
			userEmail, recent, s.limits.RateLimitWindow)
		return fmt.Errorf("%w: %d requests in the last %d minutes, maximum is %d",
			ErrRateLimited, recent, s.limits.RateLimitWindow, s.limits.RateLimitMaxInserts)
	}

	return nil
}
