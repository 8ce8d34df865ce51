package create_booking

import (
	"github.com/AdrianLinares/microreserva/internal/domain"
)

// SlotSelection координаты одного запрашиваемого слота
type SlotSelection struct {
	EquipmentID int
	Date        string // YYYY-MM-DD
	TimeSlotID  string // например "08:00"
}

// Request модель запроса на создание бронирований. Одна заявка может
// содержать несколько слотов; квота проверяется по размеру всей пачки.
type Request struct {
	Slots []SlotSelection

	UserName  string
	UserEmail string
	UserGroup string

	// Status запрошенный статус создаваемых записей. Пустое значение
	// означает pending; approved доступен только администратору.
	Status domain.BookingStatus

	Actor domain.Actor
}

// Response модель ответа с созданными записями
type Response struct {
	Created []*domain.Booking
}
