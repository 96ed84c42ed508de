package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

type TemplateHandler struct {
	CreateUC *usecase.CreateTemplateUseCase
	ListUC   *usecase.ListTemplatesUseCase
	GetUC    *usecase.GetTemplateUseCase
}

func NewTemplateHandler(create *usecase.CreateTemplateUseCase, list *usecase.ListTemplatesUseCase, get *usecase.GetTemplateUseCase) *TemplateHandler {
	return &TemplateHandler{CreateUC: create, ListUC: list, GetUC: get}
}

// HandleCreate atende POST /templates.
func (h *TemplateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"template": output})
}

// HandleList atende GET /trusts/{trustId}/templates.
func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	trustID := chi.URLParam(r, "trustId")

	templates, err := h.ListUC.Execute(r.Context(), trustID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

// HandleGet atende GET /templates/{templateId}.
func (h *TemplateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateId")

	template, err := h.GetUC.Execute(r.Context(), templateID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"template": template})
}
