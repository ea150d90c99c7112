package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const orderColumns = `id, user_id, kind, product_ref, quantity, unit_price, total, status, response, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Kind, &o.ProductRef, &o.Quantity, &o.UnitPrice, &o.Total, &o.Status, &o.Response, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (user_id, kind, product_ref, quantity, unit_price, total, status, response)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, order.UserID, order.Kind, order.ProductRef, order.Quantity,
		order.UnitPrice, order.Total, order.Status, order.Response).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// UpdateStatus moves a pending order to its final state. Completed orders
// are immutable, so a second update of the same order is a no-op.
func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, response string) error {
	query := `
		UPDATE orders
		SET status = $1, response = $2
		WHERE id = $3 AND status = $4
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, response, orderID, domain.OrderPending)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
}

// ReserveItems locks up to quantity unsold credential lines of a product.
// Rows locked by concurrent buyers are skipped, not waited on.
func (r *Repository) ReserveItems(ctx context.Context, productID, quantity int) ([]domain.LogItem, error) {
	query := `
		SELECT id, product_id, credentials
		FROM log_items
		WHERE product_id = $1 AND order_id IS NULL
		ORDER BY id
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`
	rows, err := r.db.Query(ctx, query, productID, quantity)
	if err != nil {
		zap.L().Error("can't reserve log items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.LogItem
	for rows.Next() {
		var item domain.LogItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Credentials); err != nil {
			zap.L().Error("can't scan log item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) AssignItems(ctx context.Context, orderID int, itemIDs []int) error {
	query := `
		UPDATE log_items
		SET order_id = $1
		WHERE id = ANY($2) AND order_id IS NULL
	`
	tag, err := r.db.Exec(ctx, query, orderID, itemIDs)
	if err != nil {
		zap.L().Error("can't assign log items", zap.Error(err))
		return err
	}
	if int(tag.RowsAffected()) != len(itemIDs) {
		return errors.New("log items already sold")
	}
	return nil
}
