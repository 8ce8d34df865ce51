package booking

import (
	"github.com/AdrianLinares/microreserva/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// UpdateFields is a partial update of a record. nil fields are left
// untouched. Clearing a nullable column is expressed with a pointer to the
// zero value.
type UpdateFields struct {
	Status      *string
	Date        *string
	EquipmentID *int
	TimeSlotID  *string

	UserName  *string
	UserEmail *string
	UserGroup *string

	BlockedReason  *string
	BlockType      *string
	BlockStartDate *string
	BlockEndDate   *string
}
