package referrals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/referralservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
)

func NewMock(t *testing.T) (*ReferralHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestSummary(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Summary returned", func(t *testing.T) {
		service.EXPECT().Summary(gomock.Any(), 1).Return(&domain.ReferralSummary{
			ReferralCode:  "12345674",
			TotalEarnings: decimal.RequireFromString("750"),
			Withdrawn:     decimal.RequireFromString("500"),
			Available:     decimal.RequireFromString("250"),
			ReferredCount: 3,
		}, nil)
		rr := httptest.NewRecorder()

		handler.Summary(rr, newRequest(http.MethodGet, "/api/referrals", ""))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ReferralSummaryResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "250", resp.Available.String())
		assert.Equal(t, 3, resp.ReferredCount)
	})

	t.Run("Profile missing", func(t *testing.T) {
		service.EXPECT().Summary(gomock.Any(), 1).Return(nil, walletservice.ErrProfileNotFound)
		rr := httptest.NewRecorder()

		handler.Summary(rr, newRequest(http.MethodGet, "/api/referrals", ""))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWithdraw(t *testing.T) {
	handler, service := NewMock(t)
	bankBody := `{"amount":"500","destination":"bank","bank_name":"Access","account_number":"0123456789","account_name":"Ada"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Bank withdrawal pending",
			body: bankBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
					assert.Equal(t, 1, req.UserID)
					assert.Equal(t, domain.DestinationBank, req.Destination)
					assert.True(t, req.Amount.Equal(decimal.NewFromInt(500)))
					req.ID = 9
					req.Status = domain.WithdrawalPending
					req.CreatedAt = time.Now()
					return &req, nil
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Incomplete bank details",
			body:         `{"amount":"500","destination":"bank"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Account number too short",
			body:         `{"amount":"500","destination":"bank","bank_name":"Access","account_number":"01234","account_name":"Ada"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown destination",
			body:         `{"amount":"500","destination":"crypto"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Destination refused by service",
			body: `{"amount":"500","destination":"wallet"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).Return(nil, referralservice.ErrInvalidDestination)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Below minimum",
			body: bankBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).Return(nil, referralservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "More than available",
			body: bankBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).Return(nil, referralservice.ErrInsufficientEarnings)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Storage failure",
			body: bankBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.Withdraw(rr, newRequest(http.MethodPost, "/api/referrals/withdrawals", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetWithdrawals(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Withdrawals listed", func(t *testing.T) {
		service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return([]domain.WithdrawalRequest{
			{ID: 1, Amount: decimal.NewFromInt(500), Destination: domain.DestinationWallet, Status: domain.WithdrawalCompleted},
		}, nil)
		rr := httptest.NewRecorder()

		handler.GetWithdrawals(rr, newRequest(http.MethodGet, "/api/referrals/withdrawals", ""))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.WithdrawalResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "completed", resp[0].Status)
	})

	t.Run("No withdrawals", func(t *testing.T) {
		service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetWithdrawals(rr, newRequest(http.MethodGet, "/api/referrals/withdrawals", ""))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
