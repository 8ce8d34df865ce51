package block_equipment

import (
	"fmt"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

func validateEquipment(equipmentID int) error {
	if equipmentID == domain.EquipmentAll {
		return nil
	}
	if _, ok := domain.EquipmentByID(equipmentID); !ok {
		return fmt.Errorf("%w: unknown equipment id %d", ErrInvalidInput, equipmentID)
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	return nil
}

func validateRange(startDate, endDate string) error {
	if err := validateDate(startDate); err != nil {
		return err
	}
	if err := validateDate(endDate); err != nil {
		return err
	}
	if endDate < startDate {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidDateRange, endDate, startDate)
	}
	return nil
}
