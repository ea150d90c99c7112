// Package vtu is a client for the airtime and data bundle aggregator.
package vtu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/pkg/clients"
)

var (
	ErrRejected    = errors.New("vtu provider rejected request")
	ErrUnavailable = errors.New("vtu provider unavailable")
)

type Plan struct {
	ID      string          `json:"id"`
	Network string          `json:"network"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
}

type DataRequest struct {
	Network   string `json:"network"`
	PlanID    string `json:"plan"`
	Phone     string `json:"mobile_number"`
	RequestID string `json:"request_id"`
}

type AirtimeRequest struct {
	Network   string          `json:"network"`
	Amount    decimal.Decimal `json:"amount"`
	Phone     string          `json:"mobile_number"`
	RequestID string          `json:"request_id"`
}

// Receipt is the aggregator's confirmation of a fulfilled purchase.
type Receipt struct {
	Reference string          `json:"reference"`
	Message   string          `json:"message"`
	Raw       json.RawMessage `json:"-"`
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	apiKey  string
	client  clients.HTTPClientI
	backoff func() retry.Backoff
}

func New(baseURL, apiKey string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
		},
	}
}

func (c *Client) SetBackoff(backoff func() retry.Backoff) {
	c.backoff = backoff
}

func (c *Client) headers() http.Header {
	return http.Header{
		"Authorization": []string{"Token " + c.apiKey},
		"Content-Type":  []string{"application/json"},
	}
}

// DataPlans lists the bundles on sale for a network. Reads are retried.
func (c *Client) DataPlans(ctx context.Context, network string) ([]Plan, error) {
	endpoint := c.baseURL + "/api/data/plans?" + url.Values{"network": {network}}.Encode()

	var env envelope
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		statusCode, body, _, err := c.client.Get(ctx, endpoint, c.headers())
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrUnavailable, err))
		}
		if statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests {
			return retry.RetryableError(fmt.Errorf("%w: status %d", ErrUnavailable, statusCode))
		}
		return decode(body, &env)
	})
	if err != nil {
		return nil, err
	}

	var plans []Plan
	if err := json.Unmarshal(env.Data, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse data plans: %w", err)
	}
	return plans, nil
}

// BuyData is sent once: a purchase that timed out may still have been
// fulfilled, so it is never retried blindly.
func (c *Client) BuyData(ctx context.Context, req DataRequest) (*Receipt, error) {
	return c.purchase(ctx, "/api/data", req)
}

func (c *Client) BuyAirtime(ctx context.Context, req AirtimeRequest) (*Receipt, error) {
	return c.purchase(ctx, "/api/airtime", req)
}

func (c *Client) purchase(ctx context.Context, path string, payload interface{}) (*Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	statusCode, respBody, _, err := c.client.Post(ctx, c.baseURL+path, c.headers(), body)
	if err != nil {
		zap.L().Error("vtu purchase request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if statusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, statusCode)
	}

	var env envelope
	if err := decode(respBody, &env); err != nil {
		return nil, err
	}
	receipt := &Receipt{Raw: env.Data}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, receipt); err != nil {
			return nil, fmt.Errorf("failed to parse receipt: %w", err)
		}
	}
	if receipt.Message == "" {
		receipt.Message = env.Message
	}
	return receipt, nil
}

func decode(body []byte, env *envelope) error {
	if err := json.Unmarshal(body, env); err != nil {
		return fmt.Errorf("failed to parse vtu response: %w", err)
	}
	if env.Status != "success" {
		return fmt.Errorf("%w: %s", ErrRejected, env.Message)
	}
	return nil
}
