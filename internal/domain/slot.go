package domain

// Slot is the occupancy projection of one (date, equipment, time slot)
// triple: empty, or occupied by a record. The backing store still represents
// "empty" as no row; the tagged view exists only at the interface boundary.
type Slot struct {
	booking *Booking
}

// EmptySlot returns the unoccupied slot value.
func EmptySlot() Slot {
	return Slot{}
}

// OccupiedSlot returns a slot occupied by the given record.
func OccupiedSlot(b *Booking) Slot {
	return Slot{booking: b}
}

// Occupied reports whether the slot is taken.
func (s Slot) Occupied() bool {
	return s.booking != nil
}

// Booking returns the occupying record, nil when the slot is empty.
func (s Slot) Booking() *Booking {
	return s.booking
}
