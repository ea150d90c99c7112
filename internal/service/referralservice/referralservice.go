package referralservice

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
)

const providerName = "referral"

var (
	ErrBelowMinimum         = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientEarnings = errors.New("insufficient referral earnings")
	ErrInvalidDestination   = errors.New("invalid withdrawal destination")
	ErrWithdrawalNotFound   = errors.New("withdrawal request not found")
	ErrWithdrawalNotPending = errors.New("withdrawal request is not pending")
)

type ProfileRepo interface {
	Get(ctx context.Context, userID int) (*domain.Profile, error)
	Lock(ctx context.Context, userID int) (*domain.Profile, error)
	CountReferrals(ctx context.Context, userID int) (int, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	Lock(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	SetStatus(ctx context.Context, id int, status domain.WithdrawalStatus) error
	SumCommitted(ctx context.Context, userID int) (decimal.Decimal, error)
}

type Wallet interface {
	Apply(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error)
}

type Service struct {
	profiles      ProfileRepo
	withdrawals   WithdrawalRepo
	wallet        Wallet
	txManager     pg.TXManager
	minWithdrawal decimal.Decimal
}

func New(profiles ProfileRepo, withdrawals WithdrawalRepo, wallet Wallet, txManager pg.TXManager, minWithdrawal float64) *Service {
	return &Service{
		profiles:      profiles,
		withdrawals:   withdrawals,
		wallet:        wallet,
		txManager:     txManager,
		minWithdrawal: decimal.NewFromFloat(minWithdrawal),
	}
}

func (s *Service) Summary(ctx context.Context, userID int) (*domain.ReferralSummary, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, walletservice.ErrProfileNotFound
	}
	withdrawn, err := s.withdrawals.SumCommitted(ctx, userID)
	if err != nil {
		return nil, err
	}
	referred, err := s.profiles.CountReferrals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.ReferralSummary{
		ReferralCode:  profile.ReferralCode,
		TotalEarnings: profile.TotalReferralEarnings,
		Withdrawn:     withdrawn,
		Available:     decimal.Max(profile.TotalReferralEarnings.Sub(withdrawn), decimal.Zero),
		ReferredCount: referred,
	}, nil
}

func validateDestination(req *domain.WithdrawalRequest) error {
	switch req.Destination {
	case domain.DestinationWallet:
		req.BankName, req.AccountNumber, req.AccountName = "", "", ""
		return nil
	case domain.DestinationBank:
		req.BankName = strings.TrimSpace(req.BankName)
		req.AccountNumber = strings.TrimSpace(req.AccountNumber)
		req.AccountName = strings.TrimSpace(req.AccountName)
		if req.BankName == "" || req.AccountName == "" || len(req.AccountNumber) != 10 {
			return fmt.Errorf("%w: complete bank details are required", ErrInvalidDestination)
		}
		return nil
	}
	return ErrInvalidDestination
}

// RequestWithdrawal reserves part of the user's referral earnings. Requests
// of one user are serialised on the profile row lock, so two concurrent
// requests can never both spend the same earnings. Wallet payouts complete
// immediately; bank payouts wait for an admin.
func (s *Service) RequestWithdrawal(ctx context.Context, req domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	req.Amount = req.Amount.Round(2)
	if err := validateDestination(&req); err != nil {
		return nil, err
	}
	if req.Amount.LessThan(s.minWithdrawal) || !req.Amount.IsPositive() {
		return nil, ErrBelowMinimum
	}

	var created *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.Lock(ctx, req.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			return walletservice.ErrProfileNotFound
		}
		withdrawn, err := s.withdrawals.SumCommitted(ctx, req.UserID)
		if err != nil {
			return err
		}
		if req.Amount.GreaterThan(profile.TotalReferralEarnings.Sub(withdrawn)) {
			return ErrInsufficientEarnings
		}

		req.Status = domain.WithdrawalPending
		if req.Destination == domain.DestinationWallet {
			req.Status = domain.WithdrawalCompleted
		}
		created, err = s.withdrawals.Create(ctx, &req)
		if err != nil {
			return err
		}
		if req.Destination != domain.DestinationWallet {
			return nil
		}
		_, err = s.wallet.Apply(ctx, domain.LedgerEntry{
			UserID:      req.UserID,
			Amount:      req.Amount,
			Type:        domain.TransactionReferralWithdrawal,
			Description: "Referral earnings to wallet",
			Provider:    providerName,
			Reference:   fmt.Sprintf("withdrawal:%d", created.ID),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientEarnings) {
			zap.L().Error("failed to create withdrawal request", zap.Int("user_id", req.UserID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("user_id", req.UserID),
		zap.Int("withdrawal_id", created.ID),
		zap.String("destination", string(req.Destination)),
		zap.String("amount", req.Amount.String()))
	return created, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawals.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) Approve(ctx context.Context, id int) error {
	return s.decide(ctx, id, domain.WithdrawalCompleted)
}

// Reject returns the reserved amount to the user's available earnings.
func (s *Service) Reject(ctx context.Context, id int) error {
	return s.decide(ctx, id, domain.WithdrawalRejected)
}

func (s *Service) decide(ctx context.Context, id int, status domain.WithdrawalStatus) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wd, err := s.withdrawals.Lock(ctx, id)
		if err != nil {
			return err
		}
		if wd == nil {
			return ErrWithdrawalNotFound
		}
		if wd.Status != domain.WithdrawalPending {
			return ErrWithdrawalNotPending
		}
		return s.withdrawals.SetStatus(ctx, id, status)
	})
	if err != nil {
		return err
	}
	zap.L().Info("withdrawal request processed", zap.Int("withdrawal_id", id), zap.String("status", string(status)))
	return nil
}
