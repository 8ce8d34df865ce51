package block_equipment

import (
	"context"

	blockEquipment "github.com/AdrianLinares/microreserva/internal/usecase/block_equipment"
)

type BlockEquipmentUseCase interface {
	BlockSingle(ctx context.Context, req blockEquipment.BlockSingleRequest) (*blockEquipment.BlockResult, error)
	BlockRange(ctx context.Context, req blockEquipment.BlockRangeRequest) (*blockEquipment.BlockResult, error)
	BlockIndefinite(ctx context.Context, req blockEquipment.BlockIndefiniteRequest) (*blockEquipment.BlockResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
