// Package bookings владеет машиной статусов записи: какие переходы
// допустимы, кто их выполняет и как устроено отклонение/отмена. Отклонение
// и отмена не выставляют статус available - они удаляют запись: удалённый
// ключ и есть свободный слот.
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
	"github.com/AdrianLinares/microreserva/pkg/ptr"
)

// Service сервис операций над статусами записей
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает все записи для календарного представления
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// Get возвращает запись по ключу
func (s *Service) Get(ctx context.Context, key string) (*domain.Booking, error) {
	b, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return b, nil
}

// UpdateStatus applies a status transition to the record at key.
// The only ordinary transition is pending -> approved, and only an
// administrator performs it. Blocked is reachable solely through block
// creation and available solely through deletion (Remove), so requesting
// either here is rejected.
func (s *Service) UpdateStatus(ctx context.Context, key string, requested domain.BookingStatus, actor domain.Actor) (*domain.Booking, error) {
	if !actor.Admin {
		s.logger.Warn("UpdateStatus: non-administrator attempted transition on key=%s", key)
		return nil, ErrUnauthorized
	}

	switch requested {
	case domain.StatusApproved:
	case domain.StatusBlocked, domain.StatusAvailable:
		return nil, fmt.Errorf("%w: status %q is not reachable through a status update", ErrForbidden, requested)
	case domain.StatusPending:
		return nil, fmt.Errorf("%w: cannot transition back to %q", ErrForbidden, requested)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, requested)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if current.Status != domain.StatusPending {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for key=%s", current.Status, requested, key)
		return nil, fmt.Errorf("%w: %s -> %s", ErrForbidden, current.Status, requested)
	}

	err = s.repo.UpdateFields(ctx, key, bookingRepo.UpdateFields{Status: ptr.Ptr(string(requested))})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	current.Status = requested
	s.logger.Info("UpdateStatus: key=%s approved", key)
	return current, nil
}

// Remove deletes the record at key, turning the slot available. It
// implements rejection of a pending request, cancellation of an approved
// one, and unblocking of a materialized block. Idempotent: removing an
// absent key succeeds.
func (s *Service) Remove(ctx context.Context, key string, actor domain.Actor) error {
	if !actor.Admin {
		s.logger.Warn("Remove: non-administrator attempted deletion of key=%s", key)
		return ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Error("Remove: repository error for key=%s: %v", key, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Remove: key=%s deleted", key)
	return nil
}

// ValidateNewBooking enforces the creation rules of the status machine: a
// non-administrator may only create pending records and may not set block
// fields; direct creation into approved or blocked is administrative.
func ValidateNewBooking(b *domain.Booking, actor domain.Actor) error {
	switch b.Status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusBlocked:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, b.Status)
	}

	if actor.Admin {
		return nil
	}
	if b.Status != domain.StatusPending {
		return fmt.Errorf("%w: creating a booking with status %q", ErrUnauthorized, b.Status)
	}
	if b.HasBlockFields() {
		return fmt.Errorf("%w: block fields on a user booking", ErrUnauthorized)
	}
	return nil
}
