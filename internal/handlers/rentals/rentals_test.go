package rentals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/rentalservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*RentalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	handler.now = func() time.Time { return now }
	return handler, service
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func activeRental(id uuid.UUID) *domain.Rental {
	return &domain.Rental{
		ID:           id,
		UserID:       1,
		Service:      "whatsapp",
		Country:      "ng",
		PhoneNumber:  "2348012345678",
		Status:       domain.RentalWaitingCode,
		ChargedPrice: decimal.RequireFromString("350"),
		ExpiresAt:    now.Add(19 * time.Minute),
		CreatedAt:    now.Add(-time.Minute),
	}
}

func TestPurchase(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	body := `{"service":"whatsapp","country":"ng"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Number rented",
			body: body,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "whatsapp", "ng").Return(activeRental(id), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing fields",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Refused by service",
			body: body,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "whatsapp", "ng").Return(nil, rentalservice.ErrInvalidRequest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: body,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "whatsapp", "ng").Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Provider failure",
			body: body,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "whatsapp", "ng").
					Return(nil, fmt.Errorf("%w: %w", rentalservice.ErrProvider, errors.New("NO_NUMBERS")))
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.Purchase(rr, newRequest(http.MethodPost, "/api/rentals", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.RentalResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, id.String(), resp.ID)
				assert.Equal(t, 19*60, resp.TimeRemaining)
				assert.Equal(t, "waiting_code", resp.Status)
			}
		})
	}
}

func TestGetAndList(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	t.Run("Get own rental", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 1, id).Return(activeRental(id), nil)
		rr := httptest.NewRecorder()

		handler.Get(rr, newRequest(http.MethodGet, "/api/rentals/"+id.String(), "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.Get(rr, newRequest(http.MethodGet, "/api/rentals/nope", "", map[string]string{"id": "nope"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Foreign rental", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 1, id).Return(nil, rentalservice.ErrRentalNotFound)
		rr := httptest.NewRecorder()

		handler.Get(rr, newRequest(http.MethodGet, "/api/rentals/"+id.String(), "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("List with expired rental", func(t *testing.T) {
		expired := activeRental(id)
		expired.Status = domain.RentalExpired
		service.EXPECT().List(gomock.Any(), 1).Return([]domain.Rental{*expired}, nil)
		rr := httptest.NewRecorder()

		handler.List(rr, newRequest(http.MethodGet, "/api/rentals", "", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.RentalResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 0, resp[0].TimeRemaining)
	})

	t.Run("Empty list", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 1).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.List(rr, newRequest(http.MethodGet, "/api/rentals", "", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestCancel(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cancelled",
			prepareMock: func() {
				cancelled := activeRental(id)
				cancelled.Status = domain.RentalCancelled
				service.EXPECT().Cancel(gomock.Any(), 1, id).Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already finished",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 1, id).Return(nil, rentalservice.ErrRentalFinished)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Provider refused",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 1, id).Return(nil, rentalservice.ErrProvider)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 1, id).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.Cancel(rr, newRequest(http.MethodPost, "/api/rentals/"+id.String()+"/cancel", "", params))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestQuote(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Price returned",
			target: "/api/rentals/price?service=whatsapp&country=ng",
			prepareMock: func() {
				service.EXPECT().Quote(gomock.Any(), "whatsapp", "ng").Return(decimal.RequireFromString("350"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing country",
			target:       "/api/rentals/price?service=whatsapp",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Provider down",
			target: "/api/rentals/price?service=whatsapp&country=ng",
			prepareMock: func() {
				service.EXPECT().Quote(gomock.Any(), "whatsapp", "ng").Return(decimal.Zero, rentalservice.ErrProvider)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.Quote(rr, newRequest(http.MethodGet, tt.target, "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.RentalQuoteResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "350", resp.Price.String())
			}
		})
	}
}
