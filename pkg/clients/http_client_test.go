package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	status, body, headers, err := client.Get(context.Background(), srv.URL+"/plans", http.Header{"Authorization": []string{"Token abc"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.JSONEq(t, `{"status":"error"}`, string(body))
	assert.Equal(t, "3", headers.Get("Retry-After"))
}

func TestHTTPClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		payload, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"network":"mtn"}`, string(payload))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	status, body, _, err := client.Post(context.Background(), srv.URL+"/data", http.Header{"Content-Type": []string{"application/json"}}, []byte(`{"network":"mtn"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"status":"success"}`, string(body))
}

func TestHTTPClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient().Get(ctx, srv.URL, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Get(gomock.Any(), "http://sms/api", gomock.Any()).Return(0, nil, nil, errors.New("dial error"))

	client := NewHTTPClient()
	client.SetClient(mock)
	_, _, _, err := client.Get(context.Background(), "http://sms/api", nil)

	assert.EqualError(t, err, "dial error")
}
