package vtuservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/clients/vtu"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

const providerName = "vtu"

var (
	ErrInvalidNetwork = errors.New("unsupported network")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidAmount  = errors.New("invalid airtime amount")
	ErrPlanNotFound   = errors.New("data plan not found")
	ErrProvider       = errors.New("vtu provider error")
)

var (
	minAirtime = decimal.NewFromInt(50)
	maxAirtime = decimal.NewFromInt(50000)
)

var networks = map[string]struct{}{
	"mtn":     {},
	"glo":     {},
	"airtel":  {},
	"9mobile": {},
}

type Provider interface {
	DataPlans(ctx context.Context, network string) ([]vtu.Plan, error)
	BuyData(ctx context.Context, req vtu.DataRequest) (*vtu.Receipt, error)
	BuyAirtime(ctx context.Context, req vtu.AirtimeRequest) (*vtu.Receipt, error)
}

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, response string) error
}

type ProfileRepo interface {
	Lock(ctx context.Context, userID int) (*domain.Profile, error)
}

type Wallet interface {
	Apply(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error)
}

type Service struct {
	provider  Provider
	orders    OrderRepo
	profiles  ProfileRepo
	wallet    Wallet
	txManager pg.TXManager
}

func New(provider Provider, orders OrderRepo, profiles ProfileRepo, wallet Wallet, txManager pg.TXManager) *Service {
	return &Service{
		provider:  provider,
		orders:    orders,
		profiles:  profiles,
		wallet:    wallet,
		txManager: txManager,
	}
}

func normalizeNetwork(network string) (string, error) {
	network = strings.ToLower(strings.TrimSpace(network))
	if _, ok := networks[network]; !ok {
		return "", ErrInvalidNetwork
	}
	return network, nil
}

func (s *Service) Plans(ctx context.Context, network string) ([]vtu.Plan, error) {
	network, err := normalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	plans, err := s.provider.DataPlans(ctx, network)
	if err != nil {
		zap.L().Error("failed to load data plans", zap.String("network", network), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	return plans, nil
}

func (s *Service) BuyData(ctx context.Context, userID int, network, planID, phone string) (*domain.Order, error) {
	network, err := normalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	msisdn, ok := validate.NormalizePhone(phone)
	if !ok {
		return nil, ErrInvalidPhone
	}

	plans, err := s.Plans(ctx, network)
	if err != nil {
		return nil, err
	}
	var plan *vtu.Plan
	for i := range plans {
		if plans[i].ID == planID {
			plan = &plans[i]
			break
		}
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	order := &domain.Order{
		UserID:     userID,
		Kind:       domain.OrderData,
		ProductRef: fmt.Sprintf("%s:%s:%s", network, plan.ID, msisdn),
		Quantity:   1,
		UnitPrice:  plan.Price,
		Total:      plan.Price,
	}
	return s.purchase(ctx, order, fmt.Sprintf("%s data %s for %s", strings.ToUpper(network), plan.Name, msisdn),
		func(requestID string) (*vtu.Receipt, error) {
			return s.provider.BuyData(ctx, vtu.DataRequest{Network: network, PlanID: plan.ID, Phone: msisdn, RequestID: requestID})
		})
}

func (s *Service) BuyAirtime(ctx context.Context, userID int, network string, amount decimal.Decimal, phone string) (*domain.Order, error) {
	network, err := normalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	msisdn, ok := validate.NormalizePhone(phone)
	if !ok {
		return nil, ErrInvalidPhone
	}
	amount = amount.Round(2)
	if amount.LessThan(minAirtime) || amount.GreaterThan(maxAirtime) {
		return nil, ErrInvalidAmount
	}

	order := &domain.Order{
		UserID:     userID,
		Kind:       domain.OrderAirtime,
		ProductRef: fmt.Sprintf("%s:%s", network, msisdn),
		Quantity:   1,
		UnitPrice:  amount,
		Total:      amount,
	}
	return s.purchase(ctx, order, fmt.Sprintf("%s airtime for %s", strings.ToUpper(network), msisdn),
		func(requestID string) (*vtu.Receipt, error) {
			return s.provider.BuyAirtime(ctx, vtu.AirtimeRequest{Network: network, Amount: amount, Phone: msisdn, RequestID: requestID})
		})
}

// purchase runs the whole order under the buyer's profile lock: balance
// check, pending order, delivery, debit and completion. A failed delivery
// commits the order as failed and leaves the wallet untouched.
func (s *Service) purchase(ctx context.Context, order *domain.Order, description string, deliver func(requestID string) (*vtu.Receipt, error)) (*domain.Order, error) {
	requestID := uuid.NewString()

	var deliveryErr error
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.Lock(ctx, order.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			return walletservice.ErrProfileNotFound
		}
		if profile.WalletBalance.LessThan(order.Total) {
			return walletservice.ErrInsufficientBalance
		}

		order.Status = domain.OrderPending
		if _, err := s.orders.Create(ctx, order); err != nil {
			return err
		}

		receipt, err := deliver(requestID)
		if err != nil {
			zap.L().Error("vtu delivery failed",
				zap.Int("order_id", order.ID),
				zap.String("request_id", requestID),
				zap.Error(err))
			deliveryErr = err
			order.Status = domain.OrderFailed
			return s.orders.UpdateStatus(ctx, order.ID, domain.OrderFailed, err.Error())
		}

		response := receipt.Message
		if receipt.Reference != "" {
			response = strings.TrimSpace(receipt.Reference + " " + receipt.Message)
		}
		if _, err := s.wallet.Apply(ctx, domain.LedgerEntry{
			UserID:      order.UserID,
			Amount:      order.Total.Neg(),
			Type:        domain.TransactionPurchase,
			Description: description,
			Provider:    providerName,
			Reference:   "vtu:" + requestID,
		}); err != nil {
			zap.L().Error("vtu delivered but debit failed",
				zap.Int("order_id", order.ID),
				zap.String("request_id", requestID),
				zap.Error(err))
			return err
		}
		order.Status = domain.OrderCompleted
		order.Response = response
		return s.orders.UpdateStatus(ctx, order.ID, domain.OrderCompleted, response)
	})
	if err != nil {
		return nil, err
	}
	if deliveryErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, deliveryErr)
	}

	zap.L().Info("vtu order completed", zap.Int("order_id", order.ID), zap.String("kind", string(order.Kind)))
	return order, nil
}
