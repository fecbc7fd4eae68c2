package get_settings

import (
	"net/http"

	"github.com/m04kA/SMC-StringingService/internal/api/handlers"
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

// Handle GET /api/v1/settings/scheduling
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetResolved(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/scheduling - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings/scheduling - Settings retrieved: stored=%t", result.Stored)
	handlers.RespondJSON(w, http.StatusOK, result)
}
