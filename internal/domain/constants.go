package domain

import "time"

// Quota and rate-limit defaults of the laboratory deployment
const (
	MaxSlotsPerPerson   = 6
	RateLimitWindow     = time.Hour
	RateLimitMaxInserts = 20
)

// Reserved identifiers inside block records
const (
	EquipmentAll = 0
	TimeSlotAll  = "all"
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, local wall-clock dates
)

// Equipment describes one instrument of the fixed laboratory set
type Equipment struct {
	ID          int
	Name        string
	Description string
	Type        string
	Brand       string
	HasCamera   bool
}

// EquipmentList - фиксированный набор инструментов лаборатории
var EquipmentList = []Equipment{
	{ID: 1, Name: "MESA No. 1", Description: "ESTEREOMICROSCOPIO ZEISS (con Cámara)", Type: "Estereomicroscopio", Brand: "ZEISS", HasCamera: true},
	{ID: 2, Name: "MESA No. 2", Description: "MICROSCOPIO ZEISS (con Cámara)", Type: "Microscopio", Brand: "ZEISS", HasCamera: true},
	{ID: 3, Name: "MESA No. 3", Description: "ESTEREOMICROSCOPIO ZEISS (con Cámara)", Type: "Estereomicroscopio", Brand: "ZEISS", HasCamera: true},
	{ID: 4, Name: "MESA No. 4", Description: "MICROSCOPIO OLYMPUS (con Cámara)", Type: "Microscopio", Brand: "OLYMPUS", HasCamera: true},
	{ID: 5, Name: "MESA No. 5", Description: "MICROSCOPIO OLYMPUS (con Cámara)", Type: "Microscopio", Brand: "OLYMPUS", HasCamera: true},
	{ID: 6, Name: "MESA No. 6", Description: "MICROSCOPIO OLYMPUS (con Cámara)", Type: "Microscopio", Brand: "OLYMPUS", HasCamera: true},
	{ID: 7, Name: "MESA No. 7", Description: "ESTEREOMICROSCOPIO ZEISS (sin Cámara)", Type: "Estereomicroscopio", Brand: "ZEISS", HasCamera: false},
	{ID: 8, Name: "MESA No. 8", Description: "MICROSCOPIO OLYMPUS (con Cámara)", Type: "Microscopio", Brand: "OLYMPUS", HasCamera: true},
}

// TimeSlot describes one of the fixed daily reservation windows
type TimeSlot struct {
	ID        string // doubles as the slot-key component, must not contain the key separator
	Label     string
	StartHour int
}

// TimeSlots - фиксированные дневные интервалы
var TimeSlots = []TimeSlot{
	{ID: "08:00", Label: "8:00 AM - 12:00 PM", StartHour: 8},
	{ID: "12:00", Label: "1:00 PM - 4:00 PM", StartHour: 13},
}

// EquipmentByID returns the catalog entry for the given instrument.
func EquipmentByID(id int) (Equipment, bool) {
	for _, eq := range EquipmentList {
		if eq.ID == id {
			return eq, true
		}
	}
	return Equipment{}, false
}

// TimeSlotByID returns the catalog entry for the given time slot.
func TimeSlotByID(id string) (TimeSlot, bool) {
	for _, ts := range TimeSlots {
		if ts.ID == id {
			return ts, true
		}
	}
	return TimeSlot{}, false
}
