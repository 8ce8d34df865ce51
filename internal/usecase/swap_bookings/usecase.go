// Package swap_bookings exchanges the slots of two bookings. Because a
// booking's key is derived from its coordinates, each booking's target key
// is exactly the other booking's current key, so a direct two-step exchange
// is impossible: the first rename would land on an occupied key. The
// exchange therefore goes through a reserved temporary key in three staged
// renames.
package swap_bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
)

// UseCase use case обмена слотов двух записей
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute swaps the coordinates of the two bookings. Both keys are
// re-derived from the coordinates each booking adopts, so identity stays
// consistent with coordinates after the swap. The collision check and all
// three renames run before any mutation is visible to other callers; a
// failure before the first rename leaves both records untouched.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SwapBookings: first=%s second=%s", req.FirstKey, req.SecondKey)

	if !req.Actor.Admin {
		uc.logger.Warn("SwapBookings: non-administrator attempted swap")
		return nil, ErrUnauthorized
	}
	if req.FirstKey == "" || req.SecondKey == "" {
		return nil, fmt.Errorf("%w: both keys are required", ErrInvalidInput)
	}
	if req.FirstKey == req.SecondKey {
		return nil, ErrSameBooking
	}

	var resp Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		first, err := uc.loadBooking(txCtx, req.FirstKey)
		if err != nil {
			return err
		}
		second, err := uc.loadBooking(txCtx, req.SecondKey)
		if err != nil {
			return err
		}

		// Блокировки не обмениваются.
		if first.IsBlock() || second.IsBlock() {
			return ErrBlockedBooking
		}

		firstNewKey := domain.DeriveKey(second.Date, second.EquipmentID, second.TimeSlotID)
		secondNewKey := domain.DeriveKey(first.Date, first.EquipmentID, first.TimeSlotID)

		// Любая третья запись на целевых ключах отменяет обмен целиком
		// до первой мутации.
		others, err := uc.bookingRepo.FindOccupiedKeys(txCtx,
			[]string{firstNewKey, secondNewKey},
			[]string{req.FirstKey, req.SecondKey},
		)
		if err != nil {
			return fmt.Errorf("%w: collision check: %v", ErrInternal, err)
		}
		if len(others) > 0 {
			return fmt.Errorf("%w: %s", ErrSwapConflict, others[0].ID)
		}

		// Этап 1: первая запись уходит на временный ключ, освобождая
		// свой слот.
		tmpKey := domain.SwapTempKey(uuid.NewString())
		staged := *first
		staged.ID = tmpKey
		if err := uc.bookingRepo.Rename(txCtx, req.FirstKey, &staged); err != nil {
			return fmt.Errorf("%w: stage first booking: %v", ErrInternal, err)
		}

		// Этап 2: вторая запись принимает координаты первой.
		movedSecond := *second
		movedSecond.ID = secondNewKey
		movedSecond.Date = first.Date
		movedSecond.EquipmentID = first.EquipmentID
		movedSecond.TimeSlotID = first.TimeSlotID
		if err := uc.bookingRepo.Rename(txCtx, req.SecondKey, &movedSecond); err != nil {
			return fmt.Errorf("%w: move second booking: %v", ErrInternal, err)
		}

		// Этап 3: первая запись принимает координаты второй.
		movedFirst := *first
		movedFirst.ID = firstNewKey
		movedFirst.Date = second.Date
		movedFirst.EquipmentID = second.EquipmentID
		movedFirst.TimeSlotID = second.TimeSlotID
		if err := uc.bookingRepo.Rename(txCtx, tmpKey, &movedFirst); err != nil {
			return fmt.Errorf("%w: move first booking: %v", ErrInternal, err)
		}

		resp = Response{FirstNewKey: firstNewKey, SecondNewKey: secondNewKey}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SwapBookings: %s <-> %s completed", resp.FirstNewKey, resp.SecondNewKey)
	return &resp, nil
}

// Reconcile repairs bookings stranded on temporary keys by a swap that was
// interrupted between staged renames. Each orphan's canonical key is
// re-derived from its stored coordinates and the record is renamed back
// when that key is free; occupied targets are reported for the operator.
func (uc *UseCase) Reconcile(ctx context.Context, actor domain.Actor) (*ReconcileReport, error) {
	if !actor.Admin {
		return nil, ErrUnauthorized
	}

	report := &ReconcileReport{}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		orphans, err := uc.bookingRepo.FindByKeyPrefix(txCtx, domain.SwapTempPrefix)
		if err != nil {
			return fmt.Errorf("%w: scan temporary keys: %v", ErrInternal, err)
		}

		for _, orphan := range orphans {
			canonical := domain.DeriveKey(orphan.Date, orphan.EquipmentID, orphan.TimeSlotID)

			occupants, err := uc.bookingRepo.FindOccupiedKeys(txCtx, []string{canonical}, nil)
			if err != nil {
				return fmt.Errorf("%w: probe canonical key: %v", ErrInternal, err)
			}
			if len(occupants) > 0 {
				uc.logger.Warn("Reconcile: canonical key %s of orphan %s is occupied", canonical, orphan.ID)
				report.Unresolved = append(report.Unresolved, orphan.ID)
				continue
			}

			restored := *orphan
			restored.ID = canonical
			if err := uc.bookingRepo.Rename(txCtx, orphan.ID, &restored); err != nil {
				return fmt.Errorf("%w: restore orphan %s: %v", ErrInternal, orphan.ID, err)
			}
			uc.logger.Info("Reconcile: orphan %s restored to %s", orphan.ID, canonical)
			report.Restored = append(report.Restored, canonical)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *UseCase) loadBooking(ctx context.Context, key string) (*domain.Booking, error) {
	b, err := uc.bookingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, key)
		}
		return nil, fmt.Errorf("%w: load booking %s: %v", ErrInternal, key, err)
	}
	return b, nil
}
