package block_equipment

import (
	"errors"
	"net/http"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	blockEquipment "github.com/AdrianLinares/microreserva/internal/usecase/block_equipment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidMode        = "modo de bloqueo desconocido"
	msgInvalidInput       = "datos de bloqueo no válidos"
	msgInvalidDateRange   = "rango de fechas no válido"
	msgUnauthorized       = "operación reservada al administrador"
)

type Handler struct {
	useCase BlockEquipmentUseCase
	logger  Logger
}

func NewHandler(useCase BlockEquipmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	var (
		result *blockEquipment.BlockResult
		err    error
	)

	switch req.Mode {
	case ModeSingle:
		result, err = h.useCase.BlockSingle(r.Context(), blockEquipment.BlockSingleRequest{
			EquipmentID: req.EquipmentID,
			Date:        req.Date,
			Reason:      req.Reason,
			Actor:       actor,
		})
	case ModeRange:
		result, err = h.useCase.BlockRange(r.Context(), blockEquipment.BlockRangeRequest{
			EquipmentID: req.EquipmentID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Reason:      req.Reason,
			Actor:       actor,
		})
	case ModeIndefinite:
		result, err = h.useCase.BlockIndefinite(r.Context(), blockEquipment.BlockIndefiniteRequest{
			EquipmentID: req.EquipmentID,
			StartDate:   req.StartDate,
			Reason:      req.Reason,
			Actor:       actor,
		})
	default:
		h.logger.Warn("POST /blocks - Unknown mode: %q", req.Mode)
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, blockEquipment.ErrInvalidDateRange):
			h.logger.Warn("POST /blocks - Invalid date range: start=%s, end=%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, blockEquipment.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blockEquipment.ErrUnauthorized):
			h.logger.Warn("POST /blocks - Unauthorized")
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("POST /blocks - Failed to block equipment: mode=%s, error=%v", req.Mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Equipment blocked: mode=%s, equipment=%d, blocked=%d, failed=%d",
		req.Mode, req.EquipmentID, len(result.Blocked), len(result.Failed))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResult(result))
}
