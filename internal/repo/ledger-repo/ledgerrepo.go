package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert appends a ledger row. It reports false without error when a row
// with the same provider and reference already exists.
func (r *Repository) Insert(ctx context.Context, tx *domain.WalletTransaction) (bool, error) {
	query := `
		INSERT INTO wallet_transactions (id, user_id, amount, transaction_type, description, provider, reference, actor_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
		ON CONFLICT (provider, reference) DO NOTHING
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, tx.ID, tx.UserID, tx.Amount, tx.Type, tx.Description,
		tx.Provider, tx.Reference, tx.ActorID).Scan(&tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if pg.IsUniqueViolation(err) {
			return false, nil
		}
		zap.L().Error("failed to insert wallet transaction", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.WalletTransaction, error) {
	query := `
		SELECT id, user_id, amount, transaction_type, description,
			COALESCE(provider, ''), COALESCE(reference, ''), actor_id, created_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Description,
			&tx.Provider, &tx.Reference, &tx.ActorID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate wallet transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (r *Repository) SumByUser(ctx context.Context, userID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE user_id = $1`, userID).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum wallet transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// AdminAdjustBalance delegates to the admin_adjust_balance database
// function, which locks, checks, records and updates in one statement.
func (r *Repository) AdminAdjustBalance(ctx context.Context, adj domain.AdminAdjustment) (*domain.AdjustmentResult, error) {
	query := `
		SELECT success, COALESCE(previous_balance, 0), COALESCE(new_balance, 0), COALESCE(error, '')
		FROM admin_adjust_balance($1, $2, $3, $4)
	`
	var res domain.AdjustmentResult
	err := r.db.QueryRow(ctx, query, adj.TargetUserID, adj.Amount, adj.Reason, adj.AdminUserID).
		Scan(&res.Success, &res.PreviousBalance, &res.NewBalance, &res.Error)
	if err != nil {
		zap.L().Error("failed to call admin_adjust_balance", zap.Error(err))
		return nil, err
	}
	return &res, nil
}
