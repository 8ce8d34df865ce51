package swap_bookings

import (
	"errors"
	"net/http"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	swapBookings "github.com/AdrianLinares/microreserva/internal/usecase/swap_bookings"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos de intercambio no válidos"
	msgSameBooking        = "no se puede intercambiar una reserva consigo misma"
	msgUnauthorized       = "operación reservada al administrador"
	msgNotFound           = "reserva no encontrada"
	msgBlockedBooking     = "los bloqueos no se pueden intercambiar"
	msgSwapConflict       = "el intercambio colisiona con otra reserva"
)

type Handler struct {
	useCase SwapBookingsUseCase
	logger  Logger
}

func NewHandler(useCase SwapBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/swap
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SwapBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/swap - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), &swapBookings.Request{
		FirstKey:  req.FirstKey,
		SecondKey: req.SecondKey,
		Actor:     actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, swapBookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/swap - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, swapBookings.ErrSameBooking):
			h.logger.Warn("POST /bookings/swap - Identical swap targets: key=%s", req.FirstKey)
			handlers.RespondBadRequest(w, msgSameBooking)

		case errors.Is(err, swapBookings.ErrUnauthorized):
			h.logger.Warn("POST /bookings/swap - Unauthorized")
			handlers.RespondForbidden(w, msgUnauthorized)

		case errors.Is(err, swapBookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/swap - Booking not found: first=%s, second=%s", req.FirstKey, req.SecondKey)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, swapBookings.ErrBlockedBooking):
			h.logger.Warn("POST /bookings/swap - Blocked booking: first=%s, second=%s", req.FirstKey, req.SecondKey)
			handlers.RespondBadRequest(w, msgBlockedBooking)

		case errors.Is(err, swapBookings.ErrSwapConflict):
			h.logger.Warn("POST /bookings/swap - Swap conflict: first=%s, second=%s", req.FirstKey, req.SecondKey)
			handlers.RespondConflict(w, msgSwapConflict)

		default:
			h.logger.Error("POST /bookings/swap - Failed to swap bookings: first=%s, second=%s, error=%v",
				req.FirstKey, req.SecondKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/swap - Bookings swapped: first=%s, second=%s", result.FirstNewKey, result.SecondNewKey)
	handlers.RespondJSON(w, http.StatusOK, &SwapBookingsResponse{
		FirstNewKey:  result.FirstNewKey,
		SecondNewKey: result.SecondNewKey,
	})
}

// HandleReconcile POST /api/v1/bookings/swap/reconcile
//
// Восстанавливает записи, оставшиеся на временных ключах после
// прерванного обмена.
func (h *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	report, err := h.useCase.Reconcile(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, swapBookings.ErrUnauthorized):
			h.logger.Warn("POST /bookings/swap/reconcile - Unauthorized")
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("POST /bookings/swap/reconcile - Failed to reconcile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/swap/reconcile - Reconciled: restored=%d, unresolved=%d",
		len(report.Restored), len(report.Unresolved))
	handlers.RespondJSON(w, http.StatusOK, &ReconcileResponse{
		Restored:   report.Restored,
		Unresolved: report.Unresolved,
	})
}
