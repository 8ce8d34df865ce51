// Package occupancy решает, занят ли слот. Занятость - это проекция по двум
// источникам: бессрочные блокировки (приоритетнее) и прямая запись по ключу
// слота. Материализованные и бессрочные блокировки независимы и аддитивны:
// слот подавлен, если действует хотя бы одна из них.
package occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
)

// Service сервис определения занятости слотов
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса занятости
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Resolve returns the slot projection for the given coordinates.
// Indefinite blocks matching the equipment (or all equipment) with a start
// date not after the given date win over any direct record; otherwise the
// direct key decides. A direct record with status available counts as empty.
//
// Every mutating operation calls Resolve at write time; callers must not
// trust a cached result across store calls.
func (s *Service) Resolve(ctx context.Context, equipmentID int, date, timeSlotID string) (domain.Slot, error) {
	blocks, err := s.repo.FindIndefiniteBlocks(ctx, equipmentID, date)
	if err != nil {
		s.logger.Error("Resolve: failed to fetch indefinite blocks for equipment=%d date=%s: %v", equipmentID, date, err)
		return domain.EmptySlot(), fmt.Errorf("%w: Resolve - fetch indefinite blocks: %v", ErrInternal, err)
	}
	if len(blocks) > 0 {
		return domain.OccupiedSlot(blocks[0]), nil
	}

	key := domain.DeriveKey(date, equipmentID, timeSlotID)
	b, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return domain.EmptySlot(), nil
		}
		s.logger.Error("Resolve: failed to fetch booking key=%s: %v", key, err)
		return domain.EmptySlot(), fmt.Errorf("%w: Resolve - fetch booking: %v", ErrInternal, err)
	}

	if b.Status == domain.StatusAvailable {
		// Записи со статусом available логически отсутствуют.
		return domain.EmptySlot(), nil
	}
	return domain.OccupiedSlot(b), nil
}

// IsOccupied reports whether the slot at the given coordinates is taken.
func (s *Service) IsOccupied(ctx context.Context, equipmentID int, date, timeSlotID string) (bool, error) {
	slot, err := s.Resolve(ctx, equipmentID, date, timeSlotID)
	if err != nil {
		return false, err
	}
	return slot.Occupied(), nil
}
