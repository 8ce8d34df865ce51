package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	"github.com/AdrianLinares/microreserva/internal/domain"
	"github.com/AdrianLinares/microreserva/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgNotFound           = "reserva no encontrada"
	msgUnauthorized       = "operación reservada al administrador"
	msgForbidden          = "transición de estado no permitida"
	msgInvalidStatus      = "estado de reserva no válido"
)

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

// Handle PUT /api/v1/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	updated, err := h.service.UpdateStatus(r.Context(), key, domain.BookingStatus(req.Status), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrUnauthorized):
			h.logger.Warn("PUT /bookings/{id}/status - Unauthorized: key=%s", key)
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.Is(err, bookings.ErrForbidden):
			h.logger.Warn("PUT /bookings/{id}/status - Transition not allowed: key=%s, status=%s", key, req.Status)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid status: key=%s, status=%s", key, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated: key=%s, status=%s", key, req.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(updated))
}
