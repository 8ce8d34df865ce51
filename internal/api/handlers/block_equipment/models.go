package block_equipment

import (
	blockEquipment "github.com/AdrianLinares/microreserva/internal/usecase/block_equipment"
)

// Block modes accepted by the endpoint
const (
	ModeSingle     = "single"
	ModeRange      = "range"
	ModeIndefinite = "indefinite"
)

// BlockEquipmentRequest HTTP request model. Используемые поля зависят
// от режима: single - date, range - startDate и endDate,
// indefinite - startDate.
type BlockEquipmentRequest struct {
	Mode        string `json:"mode"`
	EquipmentID int    `json:"equipmentId"` // 0 = todo el equipo
	Date        string `json:"date,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Reason      string `json:"reason"`
}

// FailedSlotResponse HTTP модель незаблокированного слота
type FailedSlotResponse struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// BlockEquipmentResponse HTTP response model
type BlockEquipmentResponse struct {
	Blocked []string             `json:"blocked"`
	Failed  []FailedSlotResponse `json:"failed,omitempty"`
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(result *blockEquipment.BlockResult) *BlockEquipmentResponse {
	resp := &BlockEquipmentResponse{
		Blocked: result.Blocked,
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, FailedSlotResponse{Key: f.Key, Error: f.Error})
	}
	return resp
}
