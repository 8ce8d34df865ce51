package relocate_booking

import "github.com/AdrianLinares/microreserva/internal/domain"

// Request модель запроса на перенос записи в другой слот
type Request struct {
	Key string // текущий ключ записи

	NewDate        string
	NewEquipmentID int
	NewTimeSlotID  string

	Actor domain.Actor
}

// Response модель ответа с новым ключом записи
type Response struct {
	NewKey  string
	Booking *domain.Booking
}
