package domain

// BookingStatus represents the status of a slot record
type BookingStatus string

const (
	StatusAvailable BookingStatus = "available"
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusBlocked   BookingStatus = "blocked"
)

// BlockType represents the kind of administrative block carried by a record
type BlockType string

const (
	BlockSingle     BlockType = "single"
	BlockRange      BlockType = "range"
	BlockIndefinite BlockType = "indefinite"
)

// Booking is the central entity: one record per occupied slot. The record's
// ID doubles as the occupancy marker for its (date, equipment, time slot)
// triple. Block records reuse the same shape with block fields set and user
// fields absent; indefinite blocks carry a synthetic ID outside the slot-key
// scheme.
type Booking struct {
	ID          string
	EquipmentID int // 0 is reserved for "all equipment" inside blocks
	Date        string
	TimeSlotID  string // "all" is reserved for "every slot" inside indefinite blocks
	Status      BookingStatus

	// User data, present only for user-originated bookings
	UserName  *string
	UserEmail *string
	UserGroup *string

	// Block data, present only when Status is blocked
	BlockedReason  *string
	BlockType      *BlockType
	BlockStartDate *string
	BlockEndDate   *string

	// Creation instant in milliseconds since epoch, assigned server-side.
	// Rate-limit windows are evaluated against it.
	Timestamp int64
}

// IsActive returns true if the record counts against a user's quota
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsBlock returns true if the record is an administrative block
func (b *Booking) IsBlock() bool {
	return b.Status == StatusBlocked
}

// IsIndefiniteBlock returns true if the record is an indefinite block
func (b *Booking) IsIndefiniteBlock() bool {
	return b.Status == StatusBlocked && b.BlockType != nil && *b.BlockType == BlockIndefinite
}

// CoversEquipment reports whether a block record applies to the given
// equipment. EquipmentID 0 inside a block means every instrument.
func (b *Booking) CoversEquipment(equipmentID int) bool {
	return b.EquipmentID == EquipmentAll || b.EquipmentID == equipmentID
}

// HasBlockFields reports whether any block-only field is set. Only
// administrators may create records carrying them.
func (b *Booking) HasBlockFields() bool {
	return b.BlockedReason != nil || b.BlockType != nil || b.BlockStartDate != nil || b.BlockEndDate != nil
}
