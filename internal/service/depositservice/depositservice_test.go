package depositservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockWallet) {
	ctrl := gomock.NewController(t)
	profiles := NewMockProfileRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(profiles, wallet, txManager, 5), profiles, wallet
}

func TestProcess(t *testing.T) {
	referrer := 7

	tests := []struct {
		name          string
		deposit       domain.Deposit
		prepareMock   func(profiles *MockProfileRepo, wallet *MockWallet)
		expected      *domain.DepositResult
		expectedError error
	}{
		{
			name:    "Paystack deposit by email",
			deposit: domain.Deposit{Provider: "paystack", Reference: "ref-1", Email: "ada@example.com", Amount: dec("5000")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
				profiles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&domain.Profile{UserID: 1}, nil)
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e domain.LedgerEntry) (decimal.Decimal, error) {
					assert.Equal(t, domain.TransactionDeposit, e.Type)
					assert.Equal(t, "paystack", e.Provider)
					assert.Equal(t, "ref-1", e.Reference)
					assert.True(t, e.Amount.Equal(dec("5000")))
					return dec("5000"), nil
				})
			},
			expected: &domain.DepositResult{UserID: 1, NewBalance: dec("5000")},
		},
		{
			name:    "Virtual account deposit pays referrer commission",
			deposit: domain.Deposit{Provider: "paymentpoint", Reference: "txn-9", Account: "1234567897", Amount: dec("2000")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
				profiles.EXPECT().FindByVirtualAccount(gomock.Any(), "1234567897").Return(&domain.Profile{UserID: 1, ReferredBy: &referrer}, nil)
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(dec("2000"), nil)
				profiles.EXPECT().AddReferralEarnings(gomock.Any(), 7, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal) error {
					assert.Equal(t, "100", amount.String())
					return nil
				})
			},
			expected: &domain.DepositResult{UserID: 1, NewBalance: dec("2000")},
		},
		{
			name:    "Redelivery is a duplicate",
			deposit: domain.Deposit{Provider: "paystack", Reference: "ref-1", Email: "ada@example.com", Amount: dec("5000")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
				profiles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&domain.Profile{UserID: 1, ReferredBy: &referrer}, nil)
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(decimal.Zero, walletservice.ErrDuplicateReference)
			},
			expected: &domain.DepositResult{UserID: 1, Duplicate: true},
		},
		{
			name:    "Account failing Luhn check is unknown",
			deposit: domain.Deposit{Provider: "paymentpoint", Reference: "txn-1", Account: "1234567890", Amount: dec("100")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
			},
			expectedError: ErrRecipientNotFound,
		},
		{
			name:    "Unknown email",
			deposit: domain.Deposit{Provider: "paystack", Reference: "ref-2", Email: "ghost@example.com", Amount: dec("100")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
				profiles.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			expectedError: ErrRecipientNotFound,
		},
		{
			name:          "Non-positive amount",
			deposit:       domain.Deposit{Provider: "paystack", Reference: "ref-3", Email: "ada@example.com", Amount: dec("-1")},
			prepareMock:   func(profiles *MockProfileRepo, wallet *MockWallet) {},
			expectedError: ErrInvalidDeposit,
		},
		{
			name:          "Missing reference",
			deposit:       domain.Deposit{Provider: "paystack", Reference: " ", Email: "ada@example.com", Amount: dec("10")},
			prepareMock:   func(profiles *MockProfileRepo, wallet *MockWallet) {},
			expectedError: ErrInvalidDeposit,
		},
		{
			name:    "Wallet failure surfaces",
			deposit: domain.Deposit{Provider: "paystack", Reference: "ref-4", Email: "ada@example.com", Amount: dec("10")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
				profiles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&domain.Profile{UserID: 1}, nil)
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(decimal.Zero, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
		{
			name:    "Referral credit failure rolls the deposit back",
			deposit: domain.Deposit{Provider: "paystack", Reference: "ref-5", Email: "ada@example.com", Amount: dec("1000")},
			prepareMock: func(profiles *MockProfileRepo, wallet *MockWallet) {
				profiles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&domain.Profile{UserID: 1, ReferredBy: &referrer}, nil)
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(dec("1000"), nil)
				profiles.EXPECT().AddReferralEarnings(gomock.Any(), 7, gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, profiles, wallet := NewMock(t)
			tt.prepareMock(profiles, wallet)

			result, err := service.Process(context.Background(), tt.deposit)
			if tt.expectedError != nil {
				require.Error(t, err)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.UserID, result.UserID)
			assert.Equal(t, tt.expected.Duplicate, result.Duplicate)
			assert.True(t, tt.expected.NewBalance.Equal(result.NewBalance))
		})
	}
}

func TestProcessSkipsZeroCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := NewMockProfileRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
	service := New(profiles, wallet, txManager, 0)
	referrer := 7

	profiles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&domain.Profile{UserID: 1, ReferredBy: &referrer}, nil)
	wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(dec("50"), nil)

	result, err := service.Process(context.Background(), domain.Deposit{
		Provider: "paystack", Reference: "ref-6", Email: "ada@example.com", Amount: dec("50"),
	})
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
}
