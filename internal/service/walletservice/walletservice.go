package walletservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/metrics"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateReference  = errors.New("transaction reference already processed")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrInvalidReason       = errors.New("reason is required")
	ErrAdjustmentRejected  = errors.New("adjustment rejected")
)

type ProfileRepo interface {
	Get(ctx context.Context, userID int) (*domain.Profile, error)
	Lock(ctx context.Context, userID int) (*domain.Profile, error)
	UpdateBalance(ctx context.Context, userID int, balance decimal.Decimal) error
}

type LedgerRepo interface {
	Insert(ctx context.Context, tx *domain.WalletTransaction) (bool, error)
	ListByUser(ctx context.Context, userID, limit int) ([]domain.WalletTransaction, error)
	SumByUser(ctx context.Context, userID int) (decimal.Decimal, error)
	AdminAdjustBalance(ctx context.Context, adj domain.AdminAdjustment) (*domain.AdjustmentResult, error)
}

type Service struct {
	profiles  ProfileRepo
	ledger    LedgerRepo
	txManager pg.TXManager
	metrics   *metrics.Metrics
}

func New(profiles ProfileRepo, ledger LedgerRepo, txManager pg.TXManager, m *metrics.Metrics) *Service {
	return &Service{
		profiles:  profiles,
		ledger:    ledger,
		txManager: txManager,
		metrics:   m,
	}
}

func validateEntry(entry domain.LedgerEntry) error {
	if !entry.Type.Valid() {
		return ErrInvalidType
	}
	if entry.Amount.IsZero() {
		return ErrInvalidAmount
	}
	switch entry.Type.Direction() {
	case 1:
		if entry.Amount.IsNegative() {
			return fmt.Errorf("%w: %s must be a credit", ErrInvalidAmount, entry.Type)
		}
	case -1:
		if entry.Amount.IsPositive() {
			return fmt.Errorf("%w: %s must be a debit", ErrInvalidAmount, entry.Type)
		}
	}
	return nil
}

// Apply moves a wallet balance and appends the matching ledger row in one
// transaction. The profile row stays locked until the transaction ends, so
// concurrent entries for the same user are applied one after another.
func (s *Service) Apply(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error) {
	entry.Amount = entry.Amount.Round(2)
	if err := validateEntry(entry); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.Lock(ctx, entry.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}

		next := profile.WalletBalance.Add(entry.Amount)
		if next.IsNegative() {
			return ErrInsufficientBalance
		}

		inserted, err := s.ledger.Insert(ctx, &domain.WalletTransaction{
			ID:          uuid.New(),
			UserID:      entry.UserID,
			Amount:      entry.Amount,
			Type:        entry.Type,
			Description: entry.Description,
			Provider:    entry.Provider,
			Reference:   entry.Reference,
			ActorID:     entry.ActorID,
		})
		if err != nil {
			return err
		}
		if !inserted {
			return ErrDuplicateReference
		}

		if err := s.profiles.UpdateBalance(ctx, entry.UserID, next); err != nil {
			return err
		}
		balance = next
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateReference) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to apply ledger entry",
				zap.Int("user_id", entry.UserID),
				zap.String("type", string(entry.Type)),
				zap.String("reference", entry.Reference),
				zap.Error(err))
		}
		return decimal.Zero, err
	}

	pg.AfterCommit(ctx, func() { s.metrics.LedgerEntry(string(entry.Type)) })
	return balance, nil
}

func (s *Service) Credit(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error) {
	entry.Amount = entry.Amount.Abs()
	return s.Apply(ctx, entry)
}

func (s *Service) Debit(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error) {
	entry.Amount = entry.Amount.Abs().Neg()
	return s.Apply(ctx, entry)
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return profile.WalletBalance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID, limit int) ([]domain.WalletTransaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	txs, err := s.ledger.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Reconcile compares the stored balance with the sum of the user's ledger rows.
func (s *Service) Reconcile(ctx context.Context, userID int) (*domain.Reconciliation, error) {
	var rec *domain.Reconciliation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.Lock(ctx, userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		sum, err := s.ledger.SumByUser(ctx, userID)
		if err != nil {
			return err
		}
		rec = &domain.Reconciliation{
			UserID:        userID,
			WalletBalance: profile.WalletBalance,
			LedgerSum:     sum,
			Drift:         profile.WalletBalance.Sub(sum),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !rec.Consistent() {
		zap.L().Warn("wallet balance drifted from ledger",
			zap.Int("user_id", userID),
			zap.String("balance", rec.WalletBalance.String()),
			zap.String("ledger_sum", rec.LedgerSum.String()))
	}
	return rec, nil
}

// AdminAdjust applies a signed manual correction through the database
// procedure. A refusal by the procedure comes back as ErrAdjustmentRejected
// together with the procedure's result.
func (s *Service) AdminAdjust(ctx context.Context, adj domain.AdminAdjustment) (*domain.AdjustmentResult, error) {
	adj.Amount = adj.Amount.Round(2)
	adj.Reason = strings.TrimSpace(adj.Reason)
	if adj.Amount.IsZero() {
		return nil, ErrInvalidAmount
	}
	if adj.Reason == "" {
		return nil, ErrInvalidReason
	}

	res, err := s.ledger.AdminAdjustBalance(ctx, adj)
	if err != nil {
		zap.L().Error("failed to adjust balance", zap.Int("user_id", adj.TargetUserID), zap.Error(err))
		return nil, err
	}
	if !res.Success {
		zap.L().Info("balance adjustment refused",
			zap.Int("user_id", adj.TargetUserID),
			zap.Int("admin_id", adj.AdminUserID),
			zap.String("reason", res.Error))
		return res, fmt.Errorf("%w: %s", ErrAdjustmentRejected, res.Error)
	}

	zap.L().Info("balance adjusted",
		zap.Int("user_id", adj.TargetUserID),
		zap.Int("admin_id", adj.AdminUserID),
		zap.String("amount", adj.Amount.String()),
		zap.String("new_balance", res.NewBalance.String()))
	s.metrics.LedgerEntry(string(domain.TransactionAdjustment))
	return res, nil
}
