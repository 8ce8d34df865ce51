package block_equipment

import (
	"context"
	"fmt"
	"time"

	"github.com/AdrianLinares/microreserva/internal/domain"
	"github.com/AdrianLinares/microreserva/pkg/ptr"
)

// Coordinator управляет блокировками оборудования: на одну дату,
// на диапазон дат и бессрочными. Блокировки одной даты и диапазона
// материализуются в отдельные записи на каждый затронутый слот;
// бессрочная блокировка хранится одной записью с синтетическим ключом.
//
// Coordinator manages equipment blocks. Single-date and range blocks
// materialize one record per affected slot; an indefinite block is a
// single record with a synthetic key that suppresses every matching
// date from its start onward.
type Coordinator struct {
	repo   BookingRepository
	clock  TimeProvider
	logger Logger
}

// NewCoordinator создает новый координатор блокировок
func NewCoordinator(repo BookingRepository, clock TimeProvider, logger Logger) *Coordinator {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &Coordinator{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// BlockSingle блокирует оборудование на одну дату (оба временных слота).
func (c *Coordinator) BlockSingle(ctx context.Context, req BlockSingleRequest) (*BlockResult, error) {
	if !req.Actor.Admin {
		return nil, fmt.Errorf("%w: BlockSingle requires admin", ErrUnauthorized)
	}
	if err := validateEquipment(req.EquipmentID); err != nil {
		return nil, err
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	result := c.materialize(ctx, []string{req.Date}, req.EquipmentID, req.Reason, domain.BlockSingle, nil, nil)
	c.logger.Info("BlockSingle: date=%s equipment=%d blocked=%d failed=%d",
		req.Date, req.EquipmentID, len(result.Blocked), len(result.Failed))
	return result, nil
}

// BlockRange блокирует оборудование на диапазон дат включительно.
func (c *Coordinator) BlockRange(ctx context.Context, req BlockRangeRequest) (*BlockResult, error) {
	if !req.Actor.Admin {
		return nil, fmt.Errorf("%w: BlockRange requires admin", ErrUnauthorized)
	}
	if err := validateEquipment(req.EquipmentID); err != nil {
		return nil, err
	}
	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	dates, err := datesBetween(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: BlockRange - expand dates: %v", ErrInternal, err)
	}

	result := c.materialize(ctx, dates, req.EquipmentID, req.Reason, domain.BlockRange,
		ptr.Ptr(req.StartDate), ptr.Ptr(req.EndDate))
	c.logger.Info("BlockRange: start=%s end=%s equipment=%d blocked=%d failed=%d",
		req.StartDate, req.EndDate, req.EquipmentID, len(result.Blocked), len(result.Failed))
	return result, nil
}

// BlockIndefinite создает бессрочную блокировку начиная с указанной даты.
// Запись одна; действие на конкретные даты вычисляется при чтении.
func (c *Coordinator) BlockIndefinite(ctx context.Context, req BlockIndefiniteRequest) (*BlockResult, error) {
	if !req.Actor.Admin {
		return nil, fmt.Errorf("%w: BlockIndefinite requires admin", ErrUnauthorized)
	}
	if err := validateEquipment(req.EquipmentID); err != nil {
		return nil, err
	}
	if err := validateDate(req.StartDate); err != nil {
		return nil, err
	}

	now := c.clock.Now().UnixMilli()
	key := domain.IndefiniteBlockKey(req.StartDate, req.EquipmentID, now)
	record := &domain.Booking{
		ID:             key,
		EquipmentID:    req.EquipmentID,
		Date:           req.StartDate,
		TimeSlotID:     domain.TimeSlotAll,
		Status:         domain.StatusBlocked,
		BlockedReason:  ptr.Ptr(req.Reason),
		BlockType:      ptr.Ptr(domain.BlockIndefinite),
		BlockStartDate: ptr.Ptr(req.StartDate),
		Timestamp:      now,
	}

	if err := c.repo.ForceUpsert(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: BlockIndefinite - upsert: %v", ErrInternal, err)
	}

	c.logger.Info("BlockIndefinite: start=%s equipment=%d key=%s", req.StartDate, req.EquipmentID, key)
	return &BlockResult{Blocked: []string{key}}, nil
}

// Unblock удаляет блокировку по ключу. Операция идемпотентна:
// отсутствие записи не считается ошибкой.
func (c *Coordinator) Unblock(ctx context.Context, req UnblockRequest) error {
	if !req.Actor.Admin {
		return fmt.Errorf("%w: Unblock requires admin", ErrUnauthorized)
	}
	if req.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidInput)
	}

	if err := c.repo.Delete(ctx, req.Key); err != nil {
		return fmt.Errorf("%w: Unblock - delete: %v", ErrInternal, err)
	}

	c.logger.Info("Unblock: key=%s", req.Key)
	return nil
}

// materialize создает записи блокировки на каждый слот из декартова
// произведения дат, оборудования и временных слотов. Транзакция не
// используется намеренно: частичный результат допустим, неудачные
// слоты возвращаются в Failed.
func (c *Coordinator) materialize(ctx context.Context, dates []string, equipmentID int, reason string, blockType domain.BlockType, startDate, endDate *string) *BlockResult {
	equipment := c.equipmentSet(equipmentID)
	now := c.clock.Now().UnixMilli()

	result := &BlockResult{}
	for _, date := range dates {
		for _, eq := range equipment {
			for _, ts := range domain.TimeSlots {
				key := domain.DeriveKey(date, eq.ID, ts.ID)

				if prev, err := c.repo.GetByKey(ctx, key); err == nil && prev.IsActive() {
					c.logger.Warn("materialize: overwriting active booking key=%s user=%s",
						key, stringOrEmpty(prev.UserEmail))
				}

				record := &domain.Booking{
					ID:             key,
					EquipmentID:    eq.ID,
					Date:           date,
					TimeSlotID:     ts.ID,
					Status:         domain.StatusBlocked,
					BlockedReason:  ptr.Ptr(reason),
					BlockType:      ptr.Ptr(blockType),
					BlockStartDate: startDate,
					BlockEndDate:   endDate,
					Timestamp:      now,
				}

				if err := c.repo.ForceUpsert(ctx, record); err != nil {
					c.logger.Error("materialize: upsert failed key=%s: %v", key, err)
					result.Failed = append(result.Failed, FailedSlot{Key: key, Error: err.Error()})
					continue
				}
				result.Blocked = append(result.Blocked, key)
			}
		}
	}
	return result
}

func (c *Coordinator) equipmentSet(equipmentID int) []domain.Equipment {
	if equipmentID == domain.EquipmentAll {
		return domain.EquipmentList
	}
	eq, _ := domain.EquipmentByID(equipmentID)
	return []domain.Equipment{eq}
}

func datesBetween(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return nil, err
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateFormat))
	}
	return dates, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
