package swap_bookings

// SwapBookingsRequest HTTP request model
type SwapBookingsRequest struct {
	FirstKey  string `json:"firstKey"`
	SecondKey string `json:"secondKey"`
}

// SwapBookingsResponse HTTP response model
type SwapBookingsResponse struct {
	FirstNewKey  string `json:"firstNewKey"`
	SecondNewKey string `json:"secondNewKey"`
}

// ReconcileResponse HTTP response model для восстановления после сбоя обмена
type ReconcileResponse struct {
	Restored   []string `json:"restored"`
	Unresolved []string `json:"unresolved"`
}
