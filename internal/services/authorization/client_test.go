package authorization

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_Decisions(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		wantAuthorized bool
		wantUnavail    bool
	}{
		{
			name:           "explicit approval",
			status:         http.StatusOK,
			body:           `{"status":"success","data":{"authorization":true}}`,
			wantAuthorized: true,
		},
		{
			name:   "explicit denial",
			status: http.StatusOK,
			body:   `{"status":"success","data":{"authorization":false}}`,
		},
		{
			name:   "denial with failure status",
			status: http.StatusForbidden,
			body:   `{"status":"fail","data":{"authorization":false}}`,
		},
		{
			name:   "unexpected payload shape",
			status: http.StatusOK,
			body:   `{"approved":true}`,
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{not json`,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantUnavail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second)
			authorized, err := client.Authorize(context.Background())

			assert.Equal(t, tt.wantAuthorized, authorized)
			if tt.wantUnavail {
				require.ErrorIs(t, err, ErrUnavailable)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorize_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	authorized, err := client.Authorize(context.Background())

	assert.False(t, authorized)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAuthorize_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":{"authorization":true}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond)
	authorized, err := client.Authorize(context.Background())

	assert.False(t, authorized)
	require.ErrorIs(t, err, ErrUnavailable)
}
