package dispatchapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendSuccess(t *testing.T) {
	var got DispatchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/whatsapp", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"message_id":"wamid.1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 0)
	res, err := c.Send(context.Background(), DispatchRequest{
		TrustID: "t", TemplateID: "tpl", UserID: "u", MessageParams: map[string]string{"name": "Ana"},
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "wamid.1", res.MessageID)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Ana", got.MessageParams["name"])
}

func TestClientSendErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"User not opted in to WhatsApp messaging"}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, 0).Send(context.Background(), DispatchRequest{TemplateID: "tpl", UserID: "u"})

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "User not opted in to WhatsApp messaging", res.Error)
}

func TestClientSendUnreadableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Send(context.Background(), DispatchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
