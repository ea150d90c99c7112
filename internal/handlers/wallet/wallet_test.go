package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/utils"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(target string, userID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestGetWallet(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Wallet returned",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), 1).Return(&domain.Profile{
					UserID:               1,
					WalletBalance:        decimal.RequireFromString("1500.50"),
					ReferralCode:         "12345674",
					VirtualAccountNumber: "8012345677",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Profile missing",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, walletservice.ErrProfileNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: walletservice.ErrProfileNotFound.Error(),
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetWallet(rr, newRequest("/api/wallet", 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.WalletResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "1500.5", resp.Balance.String())
			assert.Equal(t, "8012345677", resp.VirtualAccountNumber)
		})
	}
}

func TestGetTransactions(t *testing.T) {
	handler, service := NewMock(t)
	rows := []domain.WalletTransaction{{
		ID:        uuid.New(),
		UserID:    1,
		Amount:    decimal.RequireFromString("-250"),
		Type:      domain.TransactionPurchase,
		Reference: "order:12",
		CreatedAt: time.Now(),
	}}

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Default limit",
			target: "/api/wallet/transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 0).Return(rows, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Explicit limit",
			target: "/api/wallet/transactions?limit=10",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 10).Return(rows, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "Invalid limit",
			target:       "/api/wallet/transactions?limit=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "No transactions",
			target: "/api/wallet/transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Storage failure",
			target: "/api/wallet/transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1, 0).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetTransactions(rr, newRequest(tt.target, 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
				assert.Equal(t, "order:12", resp[0].Reference)
				assert.Equal(t, "purchase", resp[0].Type)
			}
		})
	}
}
