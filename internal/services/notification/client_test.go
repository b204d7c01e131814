package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSend_PostsPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.Send(context.Background(), "bob@test.com", "You received a transfer of $100.00 from Alice.")

	require.NoError(t, err)
	assert.Equal(t, "bob@test.com", got.Email)
	assert.Equal(t, "You received a transfer of $100.00 from Alice.", got.Message)
}

func TestClientSend_NonSuccessStatusIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.Send(context.Background(), "bob@test.com", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "504")
}

func TestClientSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.Send(context.Background(), "bob@test.com", "hi")

	require.Error(t, err)
}
