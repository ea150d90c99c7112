package depositservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

var (
	ErrInvalidDeposit    = errors.New("invalid deposit")
	ErrRecipientNotFound = errors.New("deposit recipient not found")
)

var hundred = decimal.NewFromInt(100)

type ProfileRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	FindByVirtualAccount(ctx context.Context, account string) (*domain.Profile, error)
	AddReferralEarnings(ctx context.Context, userID int, amount decimal.Decimal) error
}

type Wallet interface {
	Apply(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error)
}

type Service struct {
	profiles        ProfileRepo
	wallet          Wallet
	txManager       pg.TXManager
	referralPercent decimal.Decimal
}

func New(profiles ProfileRepo, wallet Wallet, txManager pg.TXManager, referralPercent float64) *Service {
	return &Service{
		profiles:        profiles,
		wallet:          wallet,
		txManager:       txManager,
		referralPercent: decimal.NewFromFloat(referralPercent),
	}
}

func (s *Service) recipient(ctx context.Context, d domain.Deposit) (*domain.Profile, error) {
	if d.Account != "" {
		if !validate.IsLuna(d.Account) {
			return nil, nil
		}
		return s.profiles.FindByVirtualAccount(ctx, d.Account)
	}
	if d.Email != "" {
		return s.profiles.FindByEmail(ctx, d.Email)
	}
	return nil, nil
}

// Process credits a confirmed provider payment exactly once. A redelivered
// payment with a known provider reference returns Duplicate without
// touching the wallet.
func (s *Service) Process(ctx context.Context, d domain.Deposit) (*domain.DepositResult, error) {
	d.Reference = strings.TrimSpace(d.Reference)
	d.Amount = d.Amount.Round(2)
	if d.Provider == "" || d.Reference == "" || !d.Amount.IsPositive() {
		return nil, ErrInvalidDeposit
	}

	profile, err := s.recipient(ctx, d)
	if err != nil {
		zap.L().Error("failed to resolve deposit recipient", zap.String("provider", d.Provider), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		zap.L().Warn("deposit recipient not found",
			zap.String("provider", d.Provider),
			zap.String("reference", d.Reference),
			zap.String("email", d.Email),
			zap.String("account", d.Account))
		return nil, ErrRecipientNotFound
	}

	result := &domain.DepositResult{UserID: profile.UserID}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.wallet.Apply(ctx, domain.LedgerEntry{
			UserID:      profile.UserID,
			Amount:      d.Amount,
			Type:        domain.TransactionDeposit,
			Description: fmt.Sprintf("Wallet funding via %s", d.Provider),
			Provider:    d.Provider,
			Reference:   d.Reference,
		})
		if err != nil {
			return err
		}
		result.NewBalance = balance
		return s.payReferrer(ctx, profile, d.Amount)
	})
	if errors.Is(err, walletservice.ErrDuplicateReference) {
		zap.L().Info("deposit already processed", zap.String("provider", d.Provider), zap.String("reference", d.Reference))
		result.Duplicate = true
		return result, nil
	}
	if err != nil {
		zap.L().Error("failed to credit deposit",
			zap.String("provider", d.Provider),
			zap.String("reference", d.Reference),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit credited",
		zap.Int("user_id", profile.UserID),
		zap.String("provider", d.Provider),
		zap.String("reference", d.Reference),
		zap.String("amount", d.Amount.String()))
	return result, nil
}

func (s *Service) payReferrer(ctx context.Context, profile *domain.Profile, amount decimal.Decimal) error {
	if profile.ReferredBy == nil || *profile.ReferredBy == profile.UserID {
		return nil
	}
	commission := amount.Mul(s.referralPercent).Div(hundred).RoundDown(2)
	if !commission.IsPositive() {
		return nil
	}
	return s.profiles.AddReferralEarnings(ctx, *profile.ReferredBy, commission)
}
