package smsprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/loghub/pkg/clients"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(srv.URL+"/", "key-123", clients.NewHTTPClient())
	c.SetBackoff(func() retry.Backoff {
		return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
	})
	return c
}

func TestClient_GetNumber(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1", r.URL.Path)
		assert.Equal(t, "key-123", r.URL.Query().Get("api_key"))
		assert.Equal(t, "getNumber", r.URL.Query().Get("action"))
		assert.Equal(t, "whatsapp", r.URL.Query().Get("service"))
		assert.Equal(t, "ng", r.URL.Query().Get("country"))
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":"777","number":" +2348031234567 ","price":"350.50","time_remaining":1200}}`))
	})

	act, err := c.GetNumber(context.Background(), "whatsapp", "ng")

	require.NoError(t, err)
	assert.Equal(t, "777", act.ID)
	assert.Equal(t, "+2348031234567", act.Number)
	assert.Equal(t, "350.5", act.Price.String())
	assert.Equal(t, 20*time.Minute, act.TimeRemaining)
}

func TestClient_GetPrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getPrice", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`{"status":"success","data":{"price":1500}}`))
	})

	price, err := c.GetPrice(context.Background(), "telegram", "ng")

	require.NoError(t, err)
	assert.Equal(t, "1500", price.String())
}

func TestClient_ByIDActions(t *testing.T) {
	tests := []struct {
		name   string
		action string
		call   func(c *Client) (*Activation, error)
		body   string
		check  func(t *testing.T, act *Activation)
	}{
		{
			name:   "getStatus",
			action: "getStatus",
			call:   func(c *Client) (*Activation, error) { return c.GetStatus(context.Background(), "42") },
			body:   `{"status":"success","data":{"id":"42","number":"+2349012345678"}}`,
			check:  func(t *testing.T, act *Activation) { assert.Equal(t, "+2349012345678", act.Number) },
		},
		{
			name:   "getCode",
			action: "getCode",
			call:   func(c *Client) (*Activation, error) { return c.GetCode(context.Background(), "42") },
			body:   `{"status":"success","data":{"id":"42","code":"123456"}}`,
			check:  func(t *testing.T, act *Activation) { assert.Equal(t, "123456", act.Code) },
		},
		{
			name:   "cancelNumber",
			action: "cancelNumber",
			call:   func(c *Client) (*Activation, error) { return c.CancelNumber(context.Background(), "42") },
			body:   `{"status":"success","data":{"id":"42","refunded":true}}`,
			check:  func(t *testing.T, act *Activation) { assert.True(t, act.Refunded) },
		},
		{
			name:   "refundExpired",
			action: "refundExpired",
			call:   func(c *Client) (*Activation, error) { return c.RefundExpired(context.Background(), "42") },
			body:   `{"status":"success","data":{"id":"42","refunded":false}}`,
			check:  func(t *testing.T, act *Activation) { assert.False(t, act.Refunded) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.action, r.URL.Query().Get("action"))
				assert.Equal(t, "42", r.URL.Query().Get("id"))
				_, _ = w.Write([]byte(tt.body))
			})

			act, err := tt.call(c)

			require.NoError(t, err)
			tt.check(t, act)
		})
	}
}

func TestClient_Rejected(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"NO_NUMBERS"}`))
	})

	act, err := c.GetNumber(context.Background(), "whatsapp", "ng")

	assert.Nil(t, act)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "NO_NUMBERS")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "rejections must not be retried")
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":"9","code":"STATUS_WAIT_CODE"}}`))
	})

	act, err := c.GetCode(context.Background(), "9")

	require.NoError(t, err)
	assert.Equal(t, "STATUS_WAIT_CODE", act.Code)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.GetStatus(context.Background(), "9")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_StateChangingActionsAreSentOnce(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{
			name: "getNumber",
			call: func(c *Client) error {
				_, err := c.GetNumber(context.Background(), "whatsapp", "ng")
				return err
			},
		},
		{
			name: "cancelNumber",
			call: func(c *Client) error {
				_, err := c.CancelNumber(context.Background(), "9")
				return err
			},
		},
		{
			name: "refundExpired",
			call: func(c *Client) error {
				_, err := c.RefundExpired(context.Background(), "9")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(http.StatusBadGateway)
			})

			err := tt.call(c)

			assert.ErrorIs(t, err, ErrUnavailable)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestClient_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`ACCESS_NUMBER:1:2`))
	})

	_, err := c.GetStatus(context.Background(), "1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestActivation_HasCode(t *testing.T) {
	tests := []struct {
		name       string
		activation *Activation
		want       bool
	}{
		{name: "Nil activation", activation: nil, want: false},
		{name: "Empty code", activation: &Activation{}, want: false},
		{name: "Waiting marker", activation: &Activation{Code: "STATUS_WAIT_CODE"}, want: false},
		{name: "Real code", activation: &Activation{Code: "482913"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activation.HasCode())
		})
	}
}
