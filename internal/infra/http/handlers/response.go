package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

const (
	msgInvalidJSON     = "Invalid JSON"
	msgInternalError   = "Internal server error"
	msgTrackingFailure = "Failed to track delivery"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeUseCaseError traduz o código do erro em status HTTP. Detalhes técnicos
// ficam no log, nunca na resposta.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeErrorResponse(w, domainStatus(de.Code), de.Message)
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) && te.Code == usecase.CodeTrackingWriteFailed {
		writeErrorResponse(w, http.StatusInternalServerError, msgTrackingFailure)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, msgInternalError)
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodeTemplateNotFound, usecase.CodeOptInNotFound:
		return http.StatusNotFound
	case usecase.CodeNotOptedIn:
		return http.StatusForbidden
	}
	// VALIDATION_ERROR, CONTACT_ADDRESS_MISSING
	return http.StatusBadRequest
}
