package update_settings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	"github.com/AdrianLinares/microreserva/internal/service/settings"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidEmail       = "correo electrónico no válido"
	msgUnauthorized       = "operación reservada al administrador"
)

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

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	email := strings.TrimSpace(req.NotificationEmail)
	if email != "" && !strings.Contains(email, "@") {
		h.logger.Warn("PUT /settings - Invalid email: %q", email)
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	if err := h.service.SetNotificationEmail(r.Context(), email, actor); err != nil {
		switch {
		case errors.Is(err, settings.ErrUnauthorized):
			h.logger.Warn("PUT /settings - Unauthorized")
			handlers.RespondForbidden(w, msgUnauthorized)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Notification email updated")
	handlers.RespondJSON(w, http.StatusOK, &UpdateSettingsRequest{NotificationEmail: email})
}
