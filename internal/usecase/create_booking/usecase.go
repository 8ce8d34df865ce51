package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
	bookingsService "github.com/AdrianLinares/microreserva/internal/service/bookings"
	"github.com/AdrianLinares/microreserva/internal/service/quota"
)

// UseCase use case для создания бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	occupancy    OccupancyResolver
	quota        QuotaGuard
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	occupancy OccupancyResolver,
	quotaGuard QuotaGuard,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		occupancy:    occupancy,
		quota:        quotaGuard,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute creates the requested slots as one batch. The whole batch is
// admitted or rejected: quota is checked against the batch size, and the
// occupancy checks plus inserts run inside one serializable transaction, so
// a conflict on any slot rolls back the others. The record key is derived
// from the coordinates and the insert is conditional on that key, which
// closes the check-then-act race against concurrent writers.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s slots=%d admin=%t", req.UserEmail, len(req.Slots), req.Actor.Admin)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	// Квоты действуют только на пользовательские pending-заявки.
	if !req.Actor.Admin {
		if err := uc.quota.CheckCreate(ctx, req.UserEmail, len(req.Slots)); err != nil {
			switch {
			case errors.Is(err, quota.ErrQuotaExceeded):
				uc.logger.Warn("CreateBooking: quota exceeded for %s", req.UserEmail)
				return nil, fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
			case errors.Is(err, quota.ErrRateLimited):
				uc.logger.Warn("CreateBooking: rate limited %s", req.UserEmail)
				return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
			default:
				uc.logger.Error("CreateBooking: quota check failed for %s: %v", req.UserEmail, err)
				return nil, fmt.Errorf("%w: quota check: %v", ErrInternal, err)
			}
		}
	}

	timestamp := uc.timeProvider.Now().UnixMilli()
	created := make([]*domain.Booking, 0, len(req.Slots))

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, slot := range req.Slots {
			b := &domain.Booking{
				ID:          domain.DeriveKey(slot.Date, slot.EquipmentID, slot.TimeSlotID),
				EquipmentID: slot.EquipmentID,
				Date:        slot.Date,
				TimeSlotID:  slot.TimeSlotID,
				Status:      status,
				Timestamp:   timestamp,
			}
			if req.UserName != "" {
				b.UserName = &req.UserName
			}
			if req.UserEmail != "" {
				b.UserEmail = &req.UserEmail
			}
			if req.UserGroup != "" {
				b.UserGroup = &req.UserGroup
			}

			if err := bookingsService.ValidateNewBooking(b, req.Actor); err != nil {
				if errors.Is(err, bookingsService.ErrUnauthorized) {
					return fmt.Errorf("%w: %v", ErrUnauthorized, err)
				}
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			// Занятость пересчитывается в момент записи: прямые записи
			// и бессрочные блокировки.
			occupied, err := uc.occupancy.Resolve(txCtx, slot.EquipmentID, slot.Date, slot.TimeSlotID)
			if err != nil {
				return fmt.Errorf("%w: occupancy check: %v", ErrInternal, err)
			}
			if occupied.Occupied() {
				return fmt.Errorf("%w: %s", ErrSlotOccupied, b.ID)
			}

			// Условная запись: перезаписывает только остаточную строку
			// со статусом available, любая другая строка под ключом
			// означает конфликт.
			if err := uc.bookingRepo.UpsertIfAvailableOrAbsent(txCtx, b); err != nil {
				if errors.Is(err, bookingRepo.ErrSlotTaken) {
					return fmt.Errorf("%w: %s", ErrSlotOccupied, b.ID)
				}
				return fmt.Errorf("%w: insert booking: %v", ErrInternal, err)
			}
			created = append(created, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created %d bookings for %s", len(created), req.UserEmail)
	return &Response{Created: created}, nil
}
