package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	assert.Equal(t, "2025-10-15-3-08:00", DeriveKey("2025-10-15", 3, "08:00"))
	assert.Equal(t, "2025-10-15-3-12:00", DeriveKey("2025-10-15", 3, "12:00"))
}

func TestDeriveKey_DistinctCoordinatesDistinctKeys(t *testing.T) {
	dates := []string{"2025-01-01", "2025-01-02", "2025-12-31"}

	seen := make(map[string]struct{})
	for _, date := range dates {
		for _, eq := range EquipmentList {
			for _, ts := range TimeSlots {
				key := DeriveKey(date, eq.ID, ts.ID)
				_, dup := seen[key]
				require.False(t, dup, "duplicate key %s", key)
				seen[key] = struct{}{}
			}
		}
	}
	assert.Len(t, seen, len(dates)*len(EquipmentList)*len(TimeSlots))
}

func TestIndefiniteBlockKey(t *testing.T) {
	key := IndefiniteBlockKey("2025-10-15", 0, 1700000000000)

	assert.Equal(t, "indefinite-2025-10-15-0-1700000000000", key)
	assert.NotEqual(t, key, IndefiniteBlockKey("2025-10-15", 0, 1700000000001))
}

func TestSwapTempKey(t *testing.T) {
	key := SwapTempKey("abc-123")

	assert.Equal(t, "swap-tmp:abc-123", key)
	assert.True(t, IsSwapTempKey(key))
	assert.False(t, IsSwapTempKey("2025-10-15-3-08:00"))
	assert.False(t, IsSwapTempKey(IndefiniteBlockKey("2025-10-15", 0, 1)))
}
