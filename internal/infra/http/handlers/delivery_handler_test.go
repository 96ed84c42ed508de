package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

func TestDeliveryHandlerList(t *testing.T) {
	repo := new(MockDeliveryRepository)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.On("ListByUser", mock.Anything, userID).Return([]*entity.DeliveryRecord{
		entity.NewSentRecord("wamid.2", userID, now),
		entity.NewFailedRecord("error-1", userID, "provider down", now.Add(-time.Minute)),
	}, nil)
	h := NewDeliveryHandler(usecase.NewListDeliveriesUseCase(repo))

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+userID+"/deliveries", nil), "userId", userID)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Deliveries []map[string]any `json:"deliveries"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Deliveries, 2)
	assert.Equal(t, "wamid.2", resp.Deliveries[0]["message_id"])
	assert.Equal(t, "sent", resp.Deliveries[0]["delivery_status"])
	assert.Equal(t, "failed", resp.Deliveries[1]["delivery_status"])
	assert.Equal(t, "provider down", resp.Deliveries[1]["error_message"])
}

func TestDeliveryHandlerInvalidUser(t *testing.T) {
	repo := new(MockDeliveryRepository)
	h := NewDeliveryHandler(usecase.NewListDeliveriesUseCase(repo))

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "userId", "not-a-uuid")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		wantCode int
		wantDB   string
	}{
		{"healthy", fakePinger{}, http.StatusOK, "healthy"},
		{"degraded", fakePinger{err: errors.New("refused")}, http.StatusServiceUnavailable, "unhealthy: refused"},
		{"not configured", nil, http.StatusOK, "not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db)
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantDB, resp.Dependencies["database"])
		})
	}
}
