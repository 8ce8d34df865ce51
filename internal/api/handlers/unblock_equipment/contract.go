package unblock_equipment

import (
	"context"

	blockEquipment "github.com/AdrianLinares/microreserva/internal/usecase/block_equipment"
)

type UnblockEquipmentUseCase interface {
	Unblock(ctx context.Context, req blockEquipment.UnblockRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
