package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	for _, slot := range req.Slots {
		if err := validateSlot(slot); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(req.Slots))
	for _, slot := range req.Slots {
		key := domain.DeriveKey(slot.Date, slot.EquipmentID, slot.TimeSlotID)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate slot %s in batch", ErrInvalidInput, key)
		}
		seen[key] = struct{}{}
	}

	if !req.Actor.Admin {
		if strings.TrimSpace(req.UserEmail) == "" {
			return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
		}
		if strings.TrimSpace(req.UserName) == "" {
			return fmt.Errorf("%w: userName is required", ErrInvalidInput)
		}
	}

	switch req.Status {
	case "", domain.StatusPending, domain.StatusApproved, domain.StatusBlocked:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return nil
}

// validateSlot проверяет, что координаты слота существуют в каталоге
func validateSlot(slot SlotSelection) error {
	if _, err := time.Parse(domain.DateFormat, slot.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, slot.Date)
	}
	if _, ok := domain.EquipmentByID(slot.EquipmentID); !ok {
		return fmt.Errorf("%w: unknown equipment id %d", ErrInvalidInput, slot.EquipmentID)
	}
	if _, ok := domain.TimeSlotByID(slot.TimeSlotID); !ok {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, slot.TimeSlotID)
	}
	return nil
}
