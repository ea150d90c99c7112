package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const (
	providerName = "loghub"
	maxQuantity  = 50
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("not enough items in stock")
	ErrInvalidProduct  = errors.New("invalid product")
)

type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	AddItems(ctx context.Context, productID int, credentials []string) (int, error)
}

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, response string) error
	ReserveItems(ctx context.Context, productID, quantity int) ([]domain.LogItem, error)
	AssignItems(ctx context.Context, orderID int, itemIDs []int) error
}

type Wallet interface {
	Apply(ctx context.Context, entry domain.LedgerEntry) (decimal.Decimal, error)
}

type Service struct {
	products  ProductRepo
	orders    Repo
	wallet    Wallet
	txManager pg.TXManager
}

func New(products ProductRepo, orders Repo, wallet Wallet, txManager pg.TXManager) *Service {
	return &Service{
		products:  products,
		orders:    orders,
		wallet:    wallet,
		txManager: txManager,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// PlaceOrder sells quantity credential lines of a product. Reservation,
// order, debit and hand-over commit together or not at all.
func (s *Service) PlaceOrder(ctx context.Context, userID, productID, quantity int) (*domain.Order, error) {
	if quantity < 1 || quantity > maxQuantity {
		return nil, ErrInvalidQuantity
	}
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
	order := &domain.Order{
		UserID:     userID,
		Kind:       domain.OrderLogs,
		ProductRef: fmt.Sprintf("product:%d", product.ID),
		Quantity:   quantity,
		UnitPrice:  product.Price,
		Total:      total,
		Status:     domain.OrderPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		items, err := s.orders.ReserveItems(ctx, productID, quantity)
		if err != nil {
			return err
		}
		if len(items) < quantity {
			return ErrOutOfStock
		}
		if _, err := s.orders.Create(ctx, order); err != nil {
			return err
		}
		if _, err := s.wallet.Apply(ctx, domain.LedgerEntry{
			UserID:      userID,
			Amount:      total.Neg(),
			Type:        domain.TransactionPurchase,
			Description: fmt.Sprintf("%d x %s", quantity, product.Name),
			Provider:    providerName,
			Reference:   fmt.Sprintf("order:%d", order.ID),
		}); err != nil {
			return err
		}

		ids := make([]int, 0, len(items))
		lines := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
			lines = append(lines, item.Credentials)
		}
		if err := s.orders.AssignItems(ctx, order.ID, ids); err != nil {
			return err
		}
		order.Response = strings.Join(lines, "\n")
		return s.orders.UpdateStatus(ctx, order.ID, domain.OrderCompleted, order.Response)
	})
	if err != nil {
		if !errors.Is(err, ErrOutOfStock) {
			zap.L().Error("failed to place order",
				zap.Int("user_id", userID),
				zap.Int("product_id", productID),
				zap.Error(err))
		}
		return nil, err
	}

	order.Status = domain.OrderCompleted
	zap.L().Info("order completed", zap.Int("order_id", order.ID), zap.Int("user_id", userID))
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.ToLower(strings.TrimSpace(product.Category))
	product.Price = product.Price.Round(2)
	if product.Name == "" || !product.Price.IsPositive() {
		return nil, ErrInvalidProduct
	}
	return s.products.Create(ctx, product)
}

// AddItems stocks a product with credential lines, one per non-blank line.
func (s *Service) AddItems(ctx context.Context, productID int, credentials []string) (int, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}
	lines := make([]string, 0, len(credentials))
	for _, c := range credentials {
		if c = strings.TrimSpace(c); c != "" {
			lines = append(lines, c)
		}
	}
	if len(lines) == 0 {
		return 0, ErrInvalidQuantity
	}
	return s.products.AddItems(ctx, productID, lines)
}
