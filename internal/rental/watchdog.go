// Package rental drives active SMS rentals forward in the background: it
// polls the provider for numbers and codes and expires rentals whose
// deadline has passed.
package rental

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/loghub/internal/domain"
)

const (
	defaultBatch   = 1000
	defaultWorkers = 10
)

type Advancer interface {
	ListActive(ctx context.Context, limit int) ([]domain.Rental, error)
	Advance(ctx context.Context, rental domain.Rental) error
	RefreshPrices(ctx context.Context) error
}

type Watchdog struct {
	rentals  Advancer
	locker   Locker
	pool     WorkerPoolI
	interval time.Duration
	batch    int
}

func New(rentals Advancer, locker Locker, interval time.Duration) *Watchdog {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &Watchdog{
		rentals:  rentals,
		locker:   locker,
		pool:     NewWorkerPool(defaultWorkers),
		interval: interval,
		batch:    defaultBatch,
	}
}

func (w *Watchdog) Start(ctx context.Context) {
	zap.L().Info("rental watchdog started", zap.Duration("interval", w.interval))
	go w.run(ctx)
}

func (w *Watchdog) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer w.pool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("rental watchdog stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick refreshes the rental price book, then advances every active rental
// once and returns when all of them have been handled. Rentals locked by
// another worker or replica are skipped.
func (w *Watchdog) Tick(ctx context.Context) {
	if err := w.rentals.RefreshPrices(ctx); err != nil {
		zap.L().Warn("failed to refresh rental prices", zap.Error(err))
	}

	rentals, err := w.rentals.ListActive(ctx, w.batch)
	if err != nil {
		zap.L().Error("failed to fetch active rentals", zap.Error(err))
		return
	}

	var (
		g    errgroup.Group
		done sync.WaitGroup
	)
	for _, rental := range rentals {
		rental := rental
		key := rental.ID.String()

		locked, err := w.locker.TryLock(ctx, key)
		if err != nil {
			zap.L().Error("failed to lock rental", zap.String("rental_id", key), zap.Error(err))
			continue
		}
		if !locked {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := w.pool.AddTask(ctx, func() error {
				defer done.Done()
				defer w.unlock(ctx, key)
				return w.rentals.Advance(ctx, rental)
			})
			if err != nil {
				done.Done()
				w.unlock(ctx, key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to dispatch rentals", zap.Error(err))
	}
	done.Wait()
}

func (w *Watchdog) unlock(ctx context.Context, key string) {
	if err := w.locker.Unlock(context.WithoutCancel(ctx), key); err != nil {
		zap.L().Warn("failed to unlock rental", zap.String("rental_id", key), zap.Error(err))
	}
}
