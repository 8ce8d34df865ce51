package unblock_equipment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	blockEquipment "github.com/AdrianLinares/microreserva/internal/usecase/block_equipment"
)

const (
	msgInvalidKey   = "clave de bloqueo no válida"
	msgUnauthorized = "operación reservada al administrador"
)

type Handler struct {
	useCase UnblockEquipmentUseCase
	logger  Logger
}

func NewHandler(useCase UnblockEquipmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]
	actor := middleware.ActorFromContext(r.Context())

	err := h.useCase.Unblock(r.Context(), blockEquipment.UnblockRequest{Key: key, Actor: actor})
	if err != nil {
		switch {
		case errors.Is(err, blockEquipment.ErrInvalidInput):
			h.logger.Warn("DELETE /blocks/{id} - Invalid key: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, blockEquipment.ErrUnauthorized):
			h.logger.Warn("DELETE /blocks/{id} - Unauthorized: key=%s", key)
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed to unblock: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block removed: key=%s", key)
	w.WriteHeader(http.StatusNoContent)
}
