package get_settings

import (
	"errors"
	"net/http"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	"github.com/AdrianLinares/microreserva/internal/service/settings"
)

const msgUnauthorized = "operación reservada al administrador"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	email, err := h.service.NotificationEmail(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnauthorized):
			h.logger.Warn("GET /settings - Unauthorized")
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("GET /settings - Failed to get settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SettingsResponse{NotificationEmail: email})
}
