package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const withdrawalColumns = `id, user_id, amount, destination, bank_name, account_number, account_name, status, created_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var wd domain.WithdrawalRequest
	err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Destination, &wd.BankName, &wd.AccountNumber,
		&wd.AccountName, &wd.Status, &wd.CreatedAt, &wd.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (user_id, amount, destination, bank_name, account_number, account_name, status, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.Destination, withdrawal.BankName,
		withdrawal.AccountNumber, withdrawal.AccountName, withdrawal.Status, withdrawal.ProcessedAt).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawal_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}

	return withdrawals, nil
}

// Lock loads a request and holds its row lock for the rest of the transaction.
func (r *Repository) Lock(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock withdrawal request", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) SetStatus(ctx context.Context, id int, status domain.WithdrawalStatus) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, processed_at = NOW()
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("failed to update withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

// SumCommitted totals pending and completed requests; rejected ones free
// their amount again.
func (r *Repository) SumCommitted(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawal_requests
		WHERE user_id = $1 AND status IN ($2, $3)
	`
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID, domain.WithdrawalPending, domain.WithdrawalCompleted).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum withdrawal requests", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
