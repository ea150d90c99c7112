package rentalservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/metrics"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/clients/smsprovider"
)

const (
	providerName    = "smsprovider"
	defaultLifetime = 20 * time.Minute
	historyLimit    = 100
)

var (
	ErrInvalidRequest = errors.New("service and country are required")
	ErrRentalNotFound = errors.New("rental not found")
	ErrRentalFinished = errors.New("rental already finished")
	ErrProvider       = errors.New("sms provider error")
)

type Repo interface {
	Create(ctx context.Context, rental *domain.Rental) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID, limit int) ([]domain.Rental, error)
	ListActive(ctx context.Context, limit int) ([]domain.Rental, error)
	Transition(ctx context.Context, rental *domain.Rental) (bool, error)
}

type Provider interface {
	GetPrice(ctx context.Context, service, country string) (decimal.Decimal, error)
	GetNumber(ctx context.Context, service, country string) (*smsprovider.Activation, error)
	GetStatus(ctx context.Context, id string) (*smsprovider.Activation, error)
	GetCode(ctx context.Context, id string) (*smsprovider.Activation, error)
	CancelNumber(ctx context.Context, id string) (*smsprovider.Activation, error)
	RefundExpired(ctx context.Context, id string) (*smsprovider.Activation, error)
}

type Wallet interface {
	Apply(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error)
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
}

type Service struct {
	repo      Repo
	provider  Provider
	wallet    Wallet
	txManager pg.TXManager
	metrics   *metrics.Metrics
	prices    *priceBook
	now       func() time.Time
}

func New(repo Repo, provider Provider, wallet Wallet, txManager pg.TXManager, m *metrics.Metrics) *Service {
	return &Service{
		repo:      repo,
		provider:  provider,
		wallet:    wallet,
		txManager: txManager,
		metrics:   m,
		prices:    newPriceBook(priceTTL),
		now:       time.Now,
	}
}

func newPriceKey(service, country string) (priceKey, error) {
	key := priceKey{
		service: strings.ToLower(strings.TrimSpace(service)),
		country: strings.ToLower(strings.TrimSpace(country)),
	}
	if key.service == "" || key.country == "" {
		return priceKey{}, ErrInvalidRequest
	}
	return key, nil
}

func providerError(err error) error {
	return fmt.Errorf("%w: %w", ErrProvider, err)
}

func chargeReference(id uuid.UUID) string {
	return id.String() + ":charge"
}

func refundReference(id uuid.UUID) string {
	return id.String() + ":refund"
}

// Purchase rents a number for the user and charges the quoted price. The
// wallet is checked against the price book before the provider is contacted;
// an empty wallet never reaches the provider. If the charge still fails the
// number is handed back to the provider.
func (s *Service) Purchase(ctx context.Context, userID int, service, country string) (*domain.Rental, error) {
	key, err := newPriceKey(service, country)
	if err != nil {
		return nil, err
	}
	service, country = key.service, key.country

	balance, err := s.wallet.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !balance.IsPositive() {
		return nil, walletservice.ErrInsufficientBalance
	}
	price, err := s.quote(ctx, key)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(price) {
		return nil, walletservice.ErrInsufficientBalance
	}

	act, err := s.provider.GetNumber(ctx, service, country)
	if err != nil {
		zap.L().Error("failed to rent number", zap.String("service", service), zap.Error(err))
		return nil, providerError(err)
	}

	lifetime := act.TimeRemaining
	if lifetime <= 0 {
		lifetime = defaultLifetime
	}
	rental := &domain.Rental{
		ID:               uuid.New(),
		UserID:           userID,
		ProviderRentalID: act.ID,
		Service:          service,
		Country:          country,
		PhoneNumber:      act.Number,
		Status:           domain.RentalWaitingNumber,
		ChargedPrice:     price,
		ExpiresAt:        s.now().Add(lifetime),
	}
	if act.Number != "" {
		rental.Status = domain.RentalWaitingCode
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rental); err != nil {
			return err
		}
		_, err := s.wallet.Apply(ctx, domain.LedgerEntry{
			UserID:      userID,
			Amount:      price.Neg(),
			Type:        domain.TransactionSMSVerification,
			Description: fmt.Sprintf("SMS verification %s (%s)", service, country),
			Provider:    providerName,
			Reference:   chargeReference(rental.ID),
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to charge rental, releasing number",
			zap.Int("user_id", userID),
			zap.String("provider_rental_id", act.ID),
			zap.Error(err))
		if _, cerr := s.provider.CancelNumber(ctx, act.ID); cerr != nil {
			zap.L().Error("failed to release rented number", zap.String("provider_rental_id", act.ID), zap.Error(cerr))
		}
		return nil, err
	}

	s.metrics.RentalTransition(string(rental.Status))
	zap.L().Info("number rented",
		zap.Int("user_id", userID),
		zap.String("rental_id", rental.ID.String()),
		zap.String("service", service),
		zap.String("price", price.String()))
	return rental, nil
}

func (s *Service) Get(ctx context.Context, userID int, id uuid.UUID) (*domain.Rental, error) {
	rental, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil || rental.UserID != userID {
		return nil, ErrRentalNotFound
	}
	return rental, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Rental, error) {
	return s.repo.ListByUser(ctx, userID, historyLimit)
}

func (s *Service) ListActive(ctx context.Context, limit int) ([]domain.Rental, error) {
	return s.repo.ListActive(ctx, limit)
}

// Advance performs one poll of an active rental against the provider.
func (s *Service) Advance(ctx context.Context, rental domain.Rental) error {
	if rental.Status.Terminal() {
		return nil
	}
	if !s.now().Before(rental.ExpiresAt) {
		return s.expire(ctx, rental)
	}

	switch rental.Status {
	case domain.RentalWaitingNumber:
		act, err := s.provider.GetStatus(ctx, rental.ProviderRentalID)
		if err != nil {
			return providerError(err)
		}
		if act.Number == "" {
			return nil
		}
		rental.PhoneNumber = act.Number
		rental.Status = domain.RentalWaitingCode
		if act.HasCode() {
			rental.Code = act.Code
			rental.Status = domain.RentalCodeReceived
		}
		return s.transition(ctx, &rental)
	case domain.RentalWaitingCode:
		act, err := s.provider.GetCode(ctx, rental.ProviderRentalID)
		if err != nil {
			return providerError(err)
		}
		if !act.HasCode() {
			return nil
		}
		rental.Code = act.Code
		rental.Status = domain.RentalCodeReceived
		return s.transition(ctx, &rental)
	}
	return nil
}

func (s *Service) transition(ctx context.Context, rental *domain.Rental) error {
	updated, err := s.repo.Transition(ctx, rental)
	if err != nil {
		return err
	}
	if updated {
		s.metrics.RentalTransition(string(rental.Status))
		zap.L().Info("rental advanced", zap.String("rental_id", rental.ID.String()), zap.String("status", string(rental.Status)))
	}
	return nil
}

// expire closes a rental whose deadline passed. A code that arrived at the
// last moment still wins over the refund.
func (s *Service) expire(ctx context.Context, rental domain.Rental) error {
	act, err := s.provider.GetCode(ctx, rental.ProviderRentalID)
	if err != nil {
		zap.L().Warn("final code check failed", zap.String("rental_id", rental.ID.String()), zap.Error(err))
	} else if act.HasCode() {
		rental.Code = act.Code
		rental.Status = domain.RentalCodeReceived
		return s.transition(ctx, &rental)
	}

	if _, err := s.provider.RefundExpired(ctx, rental.ProviderRentalID); err != nil {
		if !errors.Is(err, smsprovider.ErrRejected) {
			return providerError(err)
		}
		zap.L().Warn("provider refused refund of expired number",
			zap.String("rental_id", rental.ID.String()), zap.Error(err))
	}

	rental.Status = domain.RentalExpired
	err = s.finish(ctx, &rental, true)
	if errors.Is(err, ErrRentalFinished) {
		return nil
	}
	return err
}

// Cancel releases the number early. The charge is returned only when the
// provider confirms it refunded the activation.
func (s *Service) Cancel(ctx context.Context, userID int, id uuid.UUID) (*domain.Rental, error) {
	rental, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if rental.Status.Terminal() {
		return nil, ErrRentalFinished
	}

	act, err := s.provider.CancelNumber(ctx, rental.ProviderRentalID)
	if err != nil {
		zap.L().Error("failed to cancel number", zap.String("rental_id", rental.ID.String()), zap.Error(err))
		return nil, providerError(err)
	}

	rental.Status = domain.RentalCancelled
	if err := s.finish(ctx, rental, act.Refunded); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *Service) finish(ctx context.Context, rental *domain.Rental, refund bool) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.repo.Transition(ctx, rental)
		if err != nil {
			return err
		}
		if !updated {
			return ErrRentalFinished
		}
		if !refund || !rental.ChargedPrice.IsPositive() {
			return nil
		}
		_, err = s.wallet.Apply(ctx, domain.LedgerEntry{
			UserID:      rental.UserID,
			Amount:      rental.ChargedPrice,
			Type:        domain.TransactionRefund,
			Description: fmt.Sprintf("Refund for %s rental (%s)", rental.Service, rental.Status),
			Provider:    providerName,
			Reference:   refundReference(rental.ID),
		})
		if errors.Is(err, walletservice.ErrDuplicateReference) {
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.RentalTransition(string(rental.Status))
	zap.L().Info("rental finished",
		zap.String("rental_id", rental.ID.String()),
		zap.String("status", string(rental.Status)),
		zap.Bool("refunded", refund))
	return nil
}
