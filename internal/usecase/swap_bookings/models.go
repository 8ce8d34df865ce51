package swap_bookings

import "github.com/AdrianLinares/microreserva/internal/domain"

// Request модель запроса на обмен слотов двух записей
type Request struct {
	FirstKey  string
	SecondKey string

	Actor domain.Actor
}

// Response модель ответа с новыми ключами обеих записей
type Response struct {
	FirstNewKey  string
	SecondNewKey string
}

// ReconcileReport итог восстановления осиротевших временных ключей
type ReconcileReport struct {
	// Restored ключи, возвращённые на канонические позиции
	Restored []string
	// Unresolved временные ключи, чья каноническая позиция занята;
	// требуют ручного вмешательства оператора
	Unresolved []string
}
