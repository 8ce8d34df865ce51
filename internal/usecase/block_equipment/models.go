package block_equipment

import "github.com/AdrianLinares/microreserva/internal/domain"

// BlockSingleRequest запрос на блокировку оборудования на одну дату
type BlockSingleRequest struct {
	EquipmentID int          // 0 = всё оборудование
	Date        string       // YYYY-MM-DD
	Reason      string       // причина блокировки
	Actor       domain.Actor // инициатор операции
}

// BlockRangeRequest запрос на блокировку оборудования на диапазон дат
type BlockRangeRequest struct {
	EquipmentID int    // 0 = всё оборудование
	StartDate   string // YYYY-MM-DD, включительно
	EndDate     string // YYYY-MM-DD, включительно
	Reason      string
	Actor       domain.Actor
}

// BlockIndefiniteRequest запрос на бессрочную блокировку начиная с даты
type BlockIndefiniteRequest struct {
	EquipmentID int    // 0 = всё оборудование
	StartDate   string // YYYY-MM-DD
	Reason      string
	Actor       domain.Actor
}

// UnblockRequest запрос на снятие блокировки по ключу записи
type UnblockRequest struct {
	Key   string
	Actor domain.Actor
}

// FailedSlot описывает слот, который не удалось заблокировать
type FailedSlot struct {
	Key   string
	Error string
}

// BlockResult результат операции блокировки
type BlockResult struct {
	Blocked []string     // ключи созданных блокировок
	Failed  []FailedSlot // слоты, блокировка которых не удалась
}
