package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/http/middleware"
	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

type DispatchHandler struct {
	DispatchUC *usecase.DispatchMessageUseCase
	Log        zerolog.Logger
}

func NewDispatchHandler(uc *usecase.DispatchMessageUseCase, log zerolog.Logger) *DispatchHandler {
	return &DispatchHandler{DispatchUC: uc, Log: log}
}

type DispatchResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id"`
}

// Handle atende POST /api/whatsapp. O body é lido uma única vez.
// Body ilegível é falha antes do envio: 500 genérico e nenhum tracking.
func (h *DispatchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.DispatchMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.RecordDispatch(middleware.DispatchResultInvalid)
		h.Log.Warn().Err(err).Msg("⚠️ Body do dispatch ilegível")
		writeErrorResponse(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	output, err := h.DispatchUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordDispatch(usecase.ErrorCode(err))
		if !usecase.IsDomainError(err) {
			h.Log.Error().Err(err).Str("template_id", input.TemplateID).Str("user_id", input.UserID).Msg("❌ Dispatch falhou")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordDispatch(middleware.DispatchResultSent)
	writeJSON(w, http.StatusOK, DispatchResponse{Success: output.Success, MessageID: output.MessageID})
}
