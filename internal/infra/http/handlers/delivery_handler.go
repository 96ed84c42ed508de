package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

type DeliveryHandler struct {
	ListUC *usecase.ListDeliveriesUseCase
}

func NewDeliveryHandler(uc *usecase.ListDeliveriesUseCase) *DeliveryHandler {
	return &DeliveryHandler{ListUC: uc}
}

// HandleList atende GET /users/{userId}/deliveries, mais recentes primeiro.
func (h *DeliveryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.ListUC.Execute(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deliveries": deliveries})
}
