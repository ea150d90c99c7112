package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const productSelect = `
	SELECT p.id, p.name, p.category, p.price, p.created_at,
		(SELECT COUNT(*) FROM log_items i WHERE i.product_id = p.id AND i.order_id IS NULL) AS stock
	FROM products p
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.CreatedAt, &p.Stock); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+` ORDER BY p.category, p.name`)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, category, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, product.Name, product.Category, product.Price).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) AddItems(ctx context.Context, productID int, credentials []string) (int, error) {
	query := `
		INSERT INTO log_items (product_id, credentials)
		SELECT $1, UNNEST($2::TEXT[])
	`
	tag, err := r.db.Exec(ctx, query, productID, credentials)
	if err != nil {
		zap.L().Error("can't add log items", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
