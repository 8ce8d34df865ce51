package relocate_booking

import (
	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/domain"
	relocateBooking "github.com/AdrianLinares/microreserva/internal/usecase/relocate_booking"
)

// RelocateBookingRequest HTTP request model
type RelocateBookingRequest struct {
	Date        string `json:"date"`
	EquipmentID int    `json:"equipmentId"`
	TimeSlotID  string `json:"timeSlotId"`
}

// RelocateBookingResponse HTTP response model
type RelocateBookingResponse struct {
	NewKey  string                    `json:"newKey"`
	Booking *handlers.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RelocateBookingRequest) ToUseCaseRequest(key string, actor domain.Actor) *relocateBooking.Request {
	return &relocateBooking.Request{
		Key:            key,
		NewDate:        r.Date,
		NewEquipmentID: r.EquipmentID,
		NewTimeSlotID:  r.TimeSlotID,
		Actor:          actor,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *relocateBooking.Response) *RelocateBookingResponse {
	return &RelocateBookingResponse{
		NewKey:  resp.NewKey,
		Booking: handlers.FromDomainBooking(resp.Booking),
	}
}
