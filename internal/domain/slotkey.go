package domain

import (
	"fmt"
	"strings"
)

// Slot keys are the canonical identity of a (date, equipment, time slot)
// triple and double as the occupancy marker: a record exists at the key iff
// the slot is taken. Keys are always re-derived from coordinates, never
// stored independently, so identity and coordinates cannot drift apart.

const (
	// IndefiniteKeyPrefix namespaces the synthetic keys of indefinite
	// blocks so they never collide with slot keys.
	IndefiniteKeyPrefix = "indefinite-"

	// SwapTempPrefix namespaces the temporary key used by the staged
	// rename of a swap. No caller-supplied coordinate produces it.
	SwapTempPrefix = "swap-tmp:"
)

// DeriveKey produces the canonical slot key. Injective as long as time-slot
// identifiers contain no "-"; the catalog in use ("08:00", "12:00")
// satisfies that, and dates are fixed-width YYYY-MM-DD.
func DeriveKey(date string, equipmentID int, timeSlotID string) string {
	return fmt.Sprintf("%s-%d-%s", date, equipmentID, timeSlotID)
}

// IndefiniteBlockKey produces the synthetic key of an indefinite block. The
// timestamp keeps repeated blocks for the same start date distinct.
func IndefiniteBlockKey(startDate string, equipmentID int, timestamp int64) string {
	return fmt.Sprintf("%s%s-%d-%d", IndefiniteKeyPrefix, startDate, equipmentID, timestamp)
}

// SwapTempKey produces a temporary key for the staged rename. The token must
// be unique per swap attempt.
func SwapTempKey(token string) string {
	return SwapTempPrefix + token
}

// IsSwapTempKey reports whether the key belongs to the reserved temporary
// namespace, i.e. is an orphan of an interrupted swap.
func IsSwapTempKey(key string) bool {
	return strings.HasPrefix(key, SwapTempPrefix)
}
