package relocate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
	"github.com/AdrianLinares/microreserva/pkg/ptr"
)

// UseCase use case переноса записи в другой слот
type UseCase struct {
	bookingRepo BookingRepository
	occupancy   OccupancyResolver
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	occupancy OccupancyResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		occupancy:   occupancy,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute moves the record at req.Key to the new coordinates, re-deriving
// its identity. When the key does not change, fields are updated in place.
// Otherwise the move is one atomic primary-key rewrite: no intermediate
// state has the booking at neither or both keys.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RelocateBooking: key=%s -> equipment=%d date=%s slot=%s",
		req.Key, req.NewEquipmentID, req.NewDate, req.NewTimeSlotID)

	if !req.Actor.Admin {
		uc.logger.Warn("RelocateBooking: non-administrator attempted relocation of key=%s", req.Key)
		return nil, ErrUnauthorized
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RelocateBooking: validation failed: %v", err)
		return nil, err
	}

	newKey := domain.DeriveKey(req.NewDate, req.NewEquipmentID, req.NewTimeSlotID)
	var moved *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByKey(txCtx, req.Key)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: load booking: %v", ErrInternal, err)
		}

		if newKey == req.Key {
			// Ключ не меняется - обновляем поля на месте.
			err := uc.bookingRepo.UpdateFields(txCtx, req.Key, bookingRepo.UpdateFields{
				Date:        ptr.Ptr(req.NewDate),
				EquipmentID: ptr.Ptr(req.NewEquipmentID),
				TimeSlotID:  ptr.Ptr(req.NewTimeSlotID),
			})
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					return ErrBookingNotFound
				}
				return fmt.Errorf("%w: update fields: %v", ErrInternal, err)
			}
			moved = b
			return nil
		}

		slot, err := uc.occupancy.Resolve(txCtx, req.NewEquipmentID, req.NewDate, req.NewTimeSlotID)
		if err != nil {
			return fmt.Errorf("%w: occupancy check: %v", ErrInternal, err)
		}
		if slot.Occupied() {
			return fmt.Errorf("%w: %s", ErrSlotOccupied, newKey)
		}

		renamed := *b
		renamed.ID = newKey
		renamed.Date = req.NewDate
		renamed.EquipmentID = req.NewEquipmentID
		renamed.TimeSlotID = req.NewTimeSlotID

		if err := uc.bookingRepo.Rename(txCtx, req.Key, &renamed); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				return fmt.Errorf("%w: %s", ErrSlotOccupied, newKey)
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			default:
				return fmt.Errorf("%w: rename booking: %v", ErrInternal, err)
			}
		}
		moved = &renamed
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RelocateBooking: key=%s moved to %s", req.Key, newKey)
	return &Response{NewKey: newKey, Booking: moved}, nil
}

// validateRequest проверяет координаты назначения по каталогу
func validateRequest(req *Request) error {
	if req.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.NewDate); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.NewDate)
	}
	if _, ok := domain.EquipmentByID(req.NewEquipmentID); !ok {
		return fmt.Errorf("%w: unknown equipment id %d", ErrInvalidInput, req.NewEquipmentID)
	}
	if _, ok := domain.TimeSlotByID(req.NewTimeSlotID); !ok {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.NewTimeSlotID)
	}
	return nil
}
