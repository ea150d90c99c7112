package walletservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/metrics"
	"github.com/GlebRadaev/loghub/internal/pg"
)

// memStore keeps profiles and ledger rows in memory. Its TXManager restores
// the state taken at Begin when the transaction fails.
type memStore struct {
	mu       sync.Mutex
	profiles map[int]domain.Profile
	rows     []domain.WalletTransaction
}

type memTxKey struct{}

func newMemStore(userIDs ...int) *memStore {
	s := &memStore{profiles: make(map[int]domain.Profile)}
	for _, id := range userIDs {
		s.profiles[id] = domain.Profile{UserID: id, WalletBalance: decimal.Zero}
	}
	return s
}

func (s *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	profiles := make(map[int]domain.Profile, len(s.profiles))
	for k, v := range s.profiles {
		profiles[k] = v
	}
	rows := append([]domain.WalletTransaction(nil), s.rows...)
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		s.mu.Lock()
		s.profiles, s.rows = profiles, rows
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) Get(_ context.Context, userID int) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memStore) Lock(ctx context.Context, userID int) (*domain.Profile, error) {
	return s.Get(ctx, userID)
}

func (s *memStore) UpdateBalance(_ context.Context, userID int, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profiles[userID]
	p.WalletBalance = balance
	s.profiles[userID] = p
	return nil
}

type memLedger struct {
	*memStore
}

func (l memLedger) Insert(_ context.Context, tx *domain.WalletTransaction) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tx.Reference != "" {
		for _, row := range l.rows {
			if row.Reference == tx.Reference {
				return false, nil
			}
		}
	}
	l.rows = append(l.rows, *tx)
	return true, nil
}

func (l memLedger) ListByUser(_ context.Context, userID, limit int) ([]domain.WalletTransaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.WalletTransaction
	for i := len(l.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if l.rows[i].UserID == userID {
			out = append(out, l.rows[i])
		}
	}
	return out, nil
}

func (l memLedger) SumByUser(_ context.Context, userID int) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := decimal.Zero
	for _, row := range l.rows {
		if row.UserID == userID {
			sum = sum.Add(row.Amount)
		}
	}
	return sum, nil
}

func (l memLedger) AdminAdjustBalance(context.Context, domain.AdminAdjustment) (*domain.AdjustmentResult, error) {
	return nil, errors.New("not supported in memory")
}

func TestLedgerSumMatchesBalanceAfterSequence(t *testing.T) {
	store := newMemStore(1, 2)
	service := New(store, memLedger{store}, store, metrics.New(prometheus.NewRegistry()))
	ctx := context.Background()

	steps := []struct {
		name          string
		entry         domain.LedgerEntry
		expectedError error
	}{
		{
			name:  "Deposit",
			entry: domain.LedgerEntry{UserID: 1, Amount: dec("1000"), Type: domain.TransactionDeposit, Reference: "paystack:A1"},
		},
		{
			name:          "Webhook replay",
			entry:         domain.LedgerEntry{UserID: 1, Amount: dec("1000"), Type: domain.TransactionDeposit, Reference: "paystack:A1"},
			expectedError: ErrDuplicateReference,
		},
		{
			name:  "Log purchase",
			entry: domain.LedgerEntry{UserID: 1, Amount: dec("-350.50"), Type: domain.TransactionPurchase, Reference: "order:1"},
		},
		{
			name:          "Overdraft refused",
			entry:         domain.LedgerEntry{UserID: 1, Amount: dec("-700"), Type: domain.TransactionPurchase, Reference: "order:2"},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:  "Rental charge",
			entry: domain.LedgerEntry{UserID: 1, Amount: dec("-200"), Type: domain.TransactionSMSVerification, Reference: "r1:charge"},
		},
		{
			name:  "Rental refund",
			entry: domain.LedgerEntry{UserID: 1, Amount: dec("200"), Type: domain.TransactionRefund, Reference: "r1:refund"},
		},
		{
			name:          "Refund replay",
			entry:         domain.LedgerEntry{UserID: 1, Amount: dec("200"), Type: domain.TransactionRefund, Reference: "r1:refund"},
			expectedError: ErrDuplicateReference,
		},
		{
			name:  "Other user deposit",
			entry: domain.LedgerEntry{UserID: 2, Amount: dec("50"), Type: domain.TransactionDeposit, Reference: "paymentpoint:B1"},
		},
		{
			name:          "Other user overdraft",
			entry:         domain.LedgerEntry{UserID: 2, Amount: dec("-50.01"), Type: domain.TransactionPurchase, Reference: "vtu:x"},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:  "Spend to zero",
			entry: domain.LedgerEntry{UserID: 1, Amount: dec("-649.50"), Type: domain.TransactionPurchase, Reference: "order:3"},
		},
		{
			name:          "Wrong sign for type",
			entry:         domain.LedgerEntry{UserID: 2, Amount: dec("-5"), Type: domain.TransactionDeposit, Reference: "paystack:B2"},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Unknown user",
			entry:         domain.LedgerEntry{UserID: 9, Amount: dec("5"), Type: domain.TransactionDeposit, Reference: "paystack:C1"},
			expectedError: ErrProfileNotFound,
		},
	}

	for _, step := range steps {
		_, err := service.Apply(ctx, step.entry)
		if step.expectedError != nil {
			require.ErrorIs(t, err, step.expectedError, step.name)
			continue
		}
		require.NoError(t, err, step.name)
	}

	for userID, want := range map[int]string{1: "0", 2: "50"} {
		rec, err := service.Reconcile(ctx, userID)
		require.NoError(t, err)
		assert.True(t, rec.Consistent(), "user %d drifted by %s", userID, rec.Drift)
		assert.True(t, rec.WalletBalance.Equal(dec(want)), "user %d balance %s", userID, rec.WalletBalance)
	}
	assert.Len(t, store.rows, 6)
}

func TestLedgerRollbackKeepsSumConsistent(t *testing.T) {
	store := newMemStore(1)
	service := New(store, memLedger{store}, store, metrics.New(prometheus.NewRegistry()))
	ctx := context.Background()

	_, err := service.Apply(ctx, domain.LedgerEntry{UserID: 1, Amount: dec("500"), Type: domain.TransactionDeposit, Reference: "paystack:A1"})
	require.NoError(t, err)

	errLater := errors.New("order update failed")
	err = store.Begin(ctx, func(ctx context.Context) error {
		if _, err := service.Apply(ctx, domain.LedgerEntry{UserID: 1, Amount: dec("-300"), Type: domain.TransactionPurchase, Reference: "order:1"}); err != nil {
			return err
		}
		return errLater
	})
	require.ErrorIs(t, err, errLater)

	rec, err := service.Reconcile(ctx, 1)
	require.NoError(t, err)
	assert.True(t, rec.Consistent())
	assert.Equal(t, "500", rec.WalletBalance.String())
}
