package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

type OptInHandler struct {
	SetUC *usecase.SetOptInUseCase
	GetUC *usecase.GetOptInUseCase
}

func NewOptInHandler(set *usecase.SetOptInUseCase, get *usecase.GetOptInUseCase) *OptInHandler {
	return &OptInHandler{SetUC: set, GetUC: get}
}

// HandleSet atende PUT /users/{userId}/whatsapp-optin.
func (h *OptInHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OptedIn *bool `json:"opted_in"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	output, err := h.SetUC.Execute(r.Context(), usecase.SetOptInInput{
		UserID:  chi.URLParam(r, "userId"),
		OptedIn: body.OptedIn,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleGet atende GET /users/{userId}/whatsapp-optin.
func (h *OptInHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	output, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
