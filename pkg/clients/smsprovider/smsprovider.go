// Package smsprovider talks to the SMS-verification number rental API.
package smsprovider

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

const (
	actionGetPrice      = "getPrice"
	actionGetNumber     = "getNumber"
	actionGetStatus     = "getStatus"
	actionGetCode       = "getCode"
	actionCancelNumber  = "cancelNumber"
	actionRefundExpired = "refundExpired"

	statusSuccess = "success"
)

// readActions only query provider state and are safe to repeat. The others
// reserve, cancel or refund a number, so a lost response must not trigger a
// second request.
var readActions = map[string]bool{
	actionGetPrice:  true,
	actionGetStatus: true,
	actionGetCode:   true,
}

var (
	// ErrRejected is returned when the provider answers with status "error".
	ErrRejected = errors.New("sms provider rejected request")
	// ErrUnavailable is returned when the provider keeps failing at the transport level.
	ErrUnavailable = errors.New("sms provider unavailable")
)

// Activation is the provider's view of a rented number.
type Activation struct {
	ID            string
	Number        string
	Code          string
	Price         decimal.Decimal
	TimeRemaining time.Duration
	Refunded      bool
}

const placeholderPrefix = "STATUS_"

// HasCode reports whether the activation carries a real verification code.
// The provider answers with an empty code or a STATUS_* marker while waiting.
func (a *Activation) HasCode() bool {
	return a != nil && a.Code != "" && !strings.HasPrefix(a.Code, placeholderPrefix)
}

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID            string          `json:"id"`
		Number        string          `json:"number"`
		Code          string          `json:"code"`
		Price         decimal.Decimal `json:"price"`
		TimeRemaining int64           `json:"time_remaining"`
		Refunded      bool            `json:"refunded"`
	} `json:"data"`
}

func (r *response) activation() *Activation {
	return &Activation{
		ID:            r.Data.ID,
		Number:        strings.TrimSpace(r.Data.Number),
		Code:          strings.TrimSpace(r.Data.Code),
		Price:         r.Data.Price,
		TimeRemaining: time.Duration(r.Data.TimeRemaining) * time.Second,
		Refunded:      r.Data.Refunded,
	}
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

// SetBackoff replaces the retry policy used for transport failures of read
// actions.
func (c *Client) SetBackoff(backoff func() retry.Backoff) {
	c.backoff = backoff
}

func (c *Client) GetPrice(ctx context.Context, service, country string) (decimal.Decimal, error) {
	resp, err := c.call(ctx, actionGetPrice, url.Values{"service": {service}, "country": {country}})
	if err != nil {
		return decimal.Zero, err
	}
	return resp.Data.Price, nil
}

func (c *Client) GetNumber(ctx context.Context, service, country string) (*Activation, error) {
	resp, err := c.call(ctx, actionGetNumber, url.Values{"service": {service}, "country": {country}})
	if err != nil {
		return nil, err
	}
	return resp.activation(), nil
}

func (c *Client) GetStatus(ctx context.Context, id string) (*Activation, error) {
	return c.byID(ctx, actionGetStatus, id)
}

func (c *Client) GetCode(ctx context.Context, id string) (*Activation, error) {
	return c.byID(ctx, actionGetCode, id)
}

func (c *Client) CancelNumber(ctx context.Context, id string) (*Activation, error) {
	return c.byID(ctx, actionCancelNumber, id)
}

func (c *Client) RefundExpired(ctx context.Context, id string) (*Activation, error) {
	return c.byID(ctx, actionRefundExpired, id)
}

func (c *Client) byID(ctx context.Context, action, id string) (*Activation, error) {
	resp, err := c.call(ctx, action, url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	return resp.activation(), nil
}

func (c *Client) call(ctx context.Context, action string, params url.Values) (*response, error) {
	params.Set("api_key", c.apiKey)
	params.Set("action", action)
	endpoint := c.baseURL + "/api/v1?" + params.Encode()

	backoff := retry.WithMaxRetries(0, retry.NewConstant(time.Millisecond))
	if readActions[action] {
		backoff = c.backoff()
	}

	var resp response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		statusCode, body, _, err := c.client.Get(ctx, endpoint, nil)
		if err != nil {
			zap.L().Warn("sms provider request failed", zap.String("action", action), zap.Error(err))
			return retry.RetryableError(fmt.Errorf("%w: %s: %v", ErrUnavailable, action, err))
		}
		if statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests {
			zap.L().Warn("sms provider returned retryable status", zap.String("action", action), zap.Int("status", statusCode))
			return retry.RetryableError(fmt.Errorf("%w: %s: status %d", ErrUnavailable, action, statusCode))
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("failed to parse %s response: %w", action, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Status != statusSuccess {
		return nil, fmt.Errorf("%w: %s: %s", ErrRejected, action, resp.Message)
	}
	return &resp, nil
}
