package handlers

import "github.com/AdrianLinares/microreserva/internal/domain"

// BookingResponse HTTP представление записи слота, общее для всех handlers
type BookingResponse struct {
	ID             string  `json:"id"`
	EquipmentID    int     `json:"equipmentId"`
	Date           string  `json:"date"`
	TimeSlotID     string  `json:"timeSlotId"`
	Status         string  `json:"status"`
	UserName       *string `json:"userName,omitempty"`
	UserEmail      *string `json:"userEmail,omitempty"`
	UserGroup      *string `json:"userGroup,omitempty"`
	BlockedReason  *string `json:"blockedReason,omitempty"`
	BlockType      *string `json:"blockType,omitempty"`
	BlockStartDate *string `json:"blockStartDate,omitempty"`
	BlockEndDate   *string `json:"blockEndDate,omitempty"`
	Timestamp      int64   `json:"timestamp"`
}

// FromDomainBooking конвертирует доменную запись в HTTP модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:             b.ID,
		EquipmentID:    b.EquipmentID,
		Date:           b.Date,
		TimeSlotID:     b.TimeSlotID,
		Status:         string(b.Status),
		UserName:       b.UserName,
		UserEmail:      b.UserEmail,
		UserGroup:      b.UserGroup,
		BlockedReason:  b.BlockedReason,
		BlockStartDate: b.BlockStartDate,
		BlockEndDate:   b.BlockEndDate,
		Timestamp:      b.Timestamp,
	}
	if b.BlockType != nil {
		bt := string(*b.BlockType)
		resp.BlockType = &bt
	}
	return resp
}

// FromDomainBookings конвертирует список доменных записей
func FromDomainBookings(list []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromDomainBooking(b))
	}
	return out
}
