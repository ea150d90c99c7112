package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/loghub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO wallet_transactions")
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		inserted  bool
		expectErr bool
	}{
		{
			name: "Inserted",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(pgxmock.AnyArg(), 1, pgxmock.AnyArg(), domain.TransactionDeposit, "Paystack deposit", "paystack", "ref-1", (*int)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
			},
			inserted: true,
		},
		{
			name: "Conflict on provider reference",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Unique violation",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx := &domain.WalletTransaction{
				ID:          uuid.New(),
				UserID:      1,
				Amount:      decimal.RequireFromString("5000"),
				Type:        domain.TransactionDeposit,
				Description: "Paystack deposit",
				Provider:    "paystack",
				Reference:   "ref-1",
			}
			inserted, err := repo.Insert(context.Background(), tx)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, inserted)
			if tt.inserted {
				assert.Equal(t, createdAt, tx.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	admin := 2
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "transaction_type", "description", "provider", "reference", "actor_id", "created_at"}).
		AddRow(id, 1, "-200.00", domain.TransactionAdjustment, "correction", "", "", &admin, createdAt).
		AddRow(uuid.New(), 1, "5000.00", domain.TransactionDeposit, "deposit", "paystack", "ref-1", nil, createdAt.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs(1, 50).
		WillReturnRows(rows)

	txs, err := repo.ListByUser(context.Background(), 1, 50)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, id, txs[0].ID)
	assert.Equal(t, "-200", txs[0].Amount.String())
	assert.Equal(t, &admin, txs[0].ActorID)
	assert.Equal(t, "paystack", txs[1].Provider)
	assert.Nil(t, txs[1].ActorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumByUser(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow("4800.00"))

	sum, err := repo.SumByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("4800")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AdminAdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM admin_adjust_balance($1, $2, $3, $4)")
	columns := []string{"success", "previous_balance", "new_balance", "error"}

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.AdjustmentResult
		expectErr bool
	}{
		{
			name: "Applied",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(5, pgxmock.AnyArg(), "correction", 2).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(true, "100.00", "300.00", ""))
			},
			expected: &domain.AdjustmentResult{
				Success:         true,
				PreviousBalance: decimal.RequireFromString("100"),
				NewBalance:      decimal.RequireFromString("300"),
			},
		},
		{
			name: "Refused by procedure",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(5, pgxmock.AnyArg(), "correction", 2).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(false, "100.00", "100.00", "insufficient balance"))
			},
			expected: &domain.AdjustmentResult{
				PreviousBalance: decimal.RequireFromString("100"),
				NewBalance:      decimal.RequireFromString("100"),
				Error:           "insufficient balance",
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("function does not exist"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			res, err := repo.AdminAdjustBalance(context.Background(), domain.AdminAdjustment{
				TargetUserID: 5,
				AdminUserID:  2,
				Amount:       decimal.RequireFromString("200"),
				Reason:       "correction",
			})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected.Success, res.Success)
				assert.True(t, tt.expected.PreviousBalance.Equal(res.PreviousBalance))
				assert.True(t, tt.expected.NewBalance.Equal(res.NewBalance))
				assert.Equal(t, tt.expected.Error, res.Error)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
