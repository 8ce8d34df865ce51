package create_booking

import (
	"errors"
	"net/http"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	createBooking "github.com/AdrianLinares/microreserva/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos de reserva no válidos"
	msgUnauthorized       = "operación reservada al administrador"
	msgSlotOccupied       = "el horario seleccionado ya está ocupado"
	msgQuotaExceeded      = "se alcanzó el límite de reservas activas por persona"
	msgRateLimited        = "demasiadas solicitudes, inténtelo más tarde"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	useCaseReq := req.ToUseCaseRequest(actor)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: email=%s, error=%v", req.UserEmail, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized privileged create: email=%s", req.UserEmail)
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.Is(err, createBooking.ErrSlotOccupied):
			h.logger.Warn("POST /bookings - Slot occupied: email=%s", req.UserEmail)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createBooking.ErrQuotaExceeded):
			h.logger.Warn("POST /bookings - Quota exceeded: email=%s", req.UserEmail)
			handlers.RespondConflict(w, msgQuotaExceeded)

		case errors.Is(err, createBooking.ErrRateLimited):
			h.logger.Warn("POST /bookings - Rate limited: email=%s", req.UserEmail)
			handlers.RespondTooManyRequests(w, msgRateLimited)

		default:
			h.logger.Error("POST /bookings - Failed to create bookings: email=%s, error=%v", req.UserEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Bookings created: count=%d, email=%s", len(result.Created), req.UserEmail)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
