package get_slot_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StringingService/internal/api/handlers"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	getSlotSummary "github.com/m04kA/SMC-StringingService/internal/usecase/get_slot_summary"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

const (
	msgMissingDate = "не указана дата"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetSlotSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotSummary.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSlotSummary.ErrOutOfWindow):
			// Текст ошибки показывается пользователю как есть
			msg, _ := scheduling.WindowMessage(err)
			h.logger.Warn("GET /slots - Date out of booking window: date=%s", dateStr)
			handlers.RespondBadRequest(w, msg)

		case errors.Is(err, getSlotSummary.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to build slot summary: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slot summary built: date=%s, open=%t, available=%d",
		dateStr, result.IsOpen, len(result.AvailableTimes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
