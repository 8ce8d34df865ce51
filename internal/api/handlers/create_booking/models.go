package create_booking

import (
	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/domain"
	createBooking "github.com/AdrianLinares/microreserva/internal/usecase/create_booking"
)

// SlotSelection HTTP модель координат одного слота
type SlotSelection struct {
	EquipmentID int    `json:"equipmentId"`
	Date        string `json:"date"`       // "2025-10-15"
	TimeSlotID  string `json:"timeSlotId"` // "08:00"
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Slots     []SlotSelection `json:"slots"`
	UserName  string          `json:"userName"`
	UserEmail string          `json:"userEmail"`
	UserGroup string          `json:"userGroup,omitempty"`
	Status    string          `json:"status,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Created []*handlers.BookingResponse `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) *createBooking.Request {
	slots := make([]createBooking.SlotSelection, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, createBooking.SlotSelection{
			EquipmentID: s.EquipmentID,
			Date:        s.Date,
			TimeSlotID:  s.TimeSlotID,
		})
	}

	return &createBooking.Request{
		Slots:     slots,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		UserGroup: r.UserGroup,
		Status:    domain.BookingStatus(r.Status),
		Actor:     actor,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Created: handlers.FromDomainBookings(resp.Created),
	}
}
