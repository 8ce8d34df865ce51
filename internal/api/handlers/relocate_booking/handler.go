package relocate_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	relocateBooking "github.com/AdrianLinares/microreserva/internal/usecase/relocate_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "coordenadas de destino no válidas"
	msgUnauthorized       = "operación reservada al administrador"
	msgNotFound           = "reserva no encontrada"
	msgSlotOccupied       = "el horario de destino ya está ocupado"
)

type Handler struct {
	useCase RelocateBookingUseCase
	logger  Logger
}

func NewHandler(useCase RelocateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	var req RelocateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(key, actor))
	if err != nil {
		switch {
		case errors.Is(err, relocateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/slot - Invalid input: key=%s, error=%v", key, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, relocateBooking.ErrUnauthorized):
			h.logger.Warn("PUT /bookings/{id}/slot - Unauthorized: key=%s", key)
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.Is(err, relocateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/slot - Booking not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, relocateBooking.ErrSlotOccupied):
			h.logger.Warn("PUT /bookings/{id}/slot - Target slot occupied: key=%s", key)
			handlers.RespondConflict(w, msgSlotOccupied)

		default:
			h.logger.Error("PUT /bookings/{id}/slot - Failed to relocate booking: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/slot - Booking relocated: key=%s, new_key=%s", key, result.NewKey)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
