package rentalservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const priceTTL = 10 * time.Minute

type priceKey struct {
	service string
	country string
}

type quote struct {
	price     decimal.Decimal
	fetchedAt time.Time
}

// priceBook holds the last provider quote per service and country.
type priceBook struct {
	mu     sync.RWMutex
	ttl    time.Duration
	quotes map[priceKey]quote
}

func newPriceBook(ttl time.Duration) *priceBook {
	return &priceBook{
		ttl:    ttl,
		quotes: make(map[priceKey]quote),
	}
}

func (b *priceBook) get(key priceKey, now time.Time) (decimal.Decimal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	q, ok := b.quotes[key]
	if !ok || now.Sub(q.fetchedAt) >= b.ttl {
		return decimal.Zero, false
	}
	return q.price, true
}

func (b *priceBook) put(key priceKey, price decimal.Decimal, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.quotes[key] = quote{price: price, fetchedAt: now}
}

func (b *priceBook) keys() []priceKey {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]priceKey, 0, len(b.quotes))
	for k := range b.quotes {
		keys = append(keys, k)
	}
	return keys
}

// Quote returns the price of renting a number for service in country.
func (s *Service) Quote(ctx context.Context, service, country string) (decimal.Decimal, error) {
	key, err := newPriceKey(service, country)
	if err != nil {
		return decimal.Zero, err
	}
	return s.quote(ctx, key)
}

func (s *Service) quote(ctx context.Context, key priceKey) (decimal.Decimal, error) {
	if price, ok := s.prices.get(key, s.now()); ok {
		return price, nil
	}
	return s.fetchPrice(ctx, key)
}

func (s *Service) fetchPrice(ctx context.Context, key priceKey) (decimal.Decimal, error) {
	price, err := s.provider.GetPrice(ctx, key.service, key.country)
	if err != nil {
		zap.L().Error("failed to get rental price",
			zap.String("service", key.service),
			zap.String("country", key.country),
			zap.Error(err))
		return decimal.Zero, providerError(err)
	}
	price = price.Round(2)
	if !price.IsPositive() {
		return decimal.Zero, providerError(errors.New("non-positive price quote"))
	}
	s.prices.put(key, price, s.now())
	return price, nil
}

// RefreshPrices re-quotes every service and country already in the price
// book. The watchdog calls it once per tick.
func (s *Service) RefreshPrices(ctx context.Context) error {
	var errs []error
	for _, key := range s.prices.keys() {
		if _, err := s.fetchPrice(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
