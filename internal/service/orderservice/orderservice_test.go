package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func NewMock(t *testing.T) (*Service, *MockProductRepo, *MockRepo, *MockWallet) {
	ctrl := gomock.NewController(t)
	products := NewMockProductRepo(ctrl)
	orders := NewMockRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(products, orders, wallet, txManager), products, orders, wallet
}

var product = &domain.Product{ID: 3, Name: "Facebook aged", Category: "facebook", Price: dec("1500")}

func TestPlaceOrder(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		prepareMock   func(products *MockProductRepo, orders *MockRepo, wallet *MockWallet)
		expectedError error
	}{
		{
			name:     "Two items sold",
			quantity: 2,
			prepareMock: func(products *MockProductRepo, orders *MockRepo, wallet *MockWallet) {
				products.EXPECT().Get(gomock.Any(), 3).Return(product, nil)
				orders.EXPECT().ReserveItems(gomock.Any(), 3, 2).Return([]domain.LogItem{
					{ID: 10, ProductID: 3, Credentials: "user1:pass1"},
					{ID: 12, ProductID: 3, Credentials: "user2:pass2"},
				}, nil)
				orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
					assert.True(t, o.Total.Equal(dec("3000")))
					o.ID = 11
					return o, nil
				})
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e domain.LedgerEntry) (decimal.Decimal, error) {
					assert.Equal(t, "order:11", e.Reference)
					assert.True(t, e.Amount.Equal(dec("-3000")))
					return dec("0"), nil
				})
				orders.EXPECT().AssignItems(gomock.Any(), 11, []int{10, 12}).Return(nil)
				orders.EXPECT().UpdateStatus(gomock.Any(), 11, domain.OrderCompleted, "user1:pass1\nuser2:pass2").Return(nil)
			},
		},
		{
			name:     "Out of stock",
			quantity: 3,
			prepareMock: func(products *MockProductRepo, orders *MockRepo, wallet *MockWallet) {
				products.EXPECT().Get(gomock.Any(), 3).Return(product, nil)
				orders.EXPECT().ReserveItems(gomock.Any(), 3, 3).Return([]domain.LogItem{{ID: 10}}, nil)
			},
			expectedError: ErrOutOfStock,
		},
		{
			name:     "Insufficient balance rolls back",
			quantity: 1,
			prepareMock: func(products *MockProductRepo, orders *MockRepo, wallet *MockWallet) {
				products.EXPECT().Get(gomock.Any(), 3).Return(product, nil)
				orders.EXPECT().ReserveItems(gomock.Any(), 3, 1).Return([]domain.LogItem{{ID: 10}}, nil)
				orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
					o.ID = 12
					return o, nil
				})
				wallet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(decimal.Zero, walletservice.ErrInsufficientBalance)
			},
			expectedError: walletservice.ErrInsufficientBalance,
		},
		{
			name:     "Unknown product",
			quantity: 1,
			prepareMock: func(products *MockProductRepo, orders *MockRepo, wallet *MockWallet) {
				products.EXPECT().Get(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
		{
			name:          "Zero quantity",
			quantity:      0,
			prepareMock:   func(products *MockProductRepo, orders *MockRepo, wallet *MockWallet) {},
			expectedError: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, products, orders, wallet := NewMock(t)
			tt.prepareMock(products, orders, wallet)

			order, err := service.PlaceOrder(context.Background(), 1, 3, tt.quantity)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderCompleted, order.Status)
			assert.Equal(t, "user1:pass1\nuser2:pass2", order.Response)
		})
	}
}

func TestGetOrders(t *testing.T) {
	service, _, orders, _ := NewMock(t)

	orders.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Order{{ID: 1}}, nil)
	result, err := service.GetOrders(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	orders.EXPECT().FindByUserID(gomock.Any(), 2).Return(nil, errors.New("db down"))
	_, err = service.GetOrders(context.Background(), 2)
	assert.Error(t, err)
}

func TestCreateProduct(t *testing.T) {
	service, products, _, _ := NewMock(t)

	_, err := service.CreateProduct(context.Background(), &domain.Product{Name: "x", Price: dec("0")})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
		assert.Equal(t, "instagram", p.Category)
		p.ID = 4
		return p, nil
	})
	created, err := service.CreateProduct(context.Background(), &domain.Product{Name: " IG fresh ", Category: "Instagram", Price: dec("800")})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "IG fresh", created.Name)
}

func TestAddItems(t *testing.T) {
	service, products, _, _ := NewMock(t)

	products.EXPECT().Get(gomock.Any(), 3).Return(product, nil)
	products.EXPECT().AddItems(gomock.Any(), 3, []string{"a:1", "b:2"}).Return(2, nil)
	added, err := service.AddItems(context.Background(), 3, []string{"a:1", "  ", "b:2 "})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	products.EXPECT().Get(gomock.Any(), 4).Return(nil, nil)
	_, err = service.AddItems(context.Background(), 4, []string{"a:1"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
