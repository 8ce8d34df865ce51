package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	"github.com/AdrianLinares/microreserva/internal/service/bookings"
)

const msgUnauthorized = "operación reservada al administrador"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{id}
//
// Удаление идемпотентно: отсутствующая запись тоже даёт 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]
	actor := middleware.ActorFromContext(r.Context())

	if err := h.service.Remove(r.Context(), key, actor); err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnauthorized):
			h.logger.Warn("DELETE /bookings/{id} - Unauthorized: key=%s", key)
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: key=%s", key)
	w.WriteHeader(http.StatusNoContent)
}
