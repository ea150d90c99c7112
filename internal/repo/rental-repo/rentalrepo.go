package rentalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const rentalColumns = `id, user_id, provider_rental_id, service, country, phone_number, code, status,
	charged_price, expires_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRental(row pgx.Row) (*domain.Rental, error) {
	var r domain.Rental
	err := row.Scan(&r.ID, &r.UserID, &r.ProviderRentalID, &r.Service, &r.Country, &r.PhoneNumber, &r.Code,
		&r.Status, &r.ChargedPrice, &r.ExpiresAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (repo *Repository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO sms_rentals (id, user_id, provider_rental_id, service, country, phone_number, code, status, charged_price, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, rental.ID, rental.UserID, rental.ProviderRentalID, rental.Service, rental.Country,
		rental.PhoneNumber, rental.Code, rental.Status, rental.ChargedPrice, rental.ExpiresAt).
		Scan(&rental.CreatedAt, &rental.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create rental", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rental, err := scanRental(repo.db.QueryRow(ctx, `SELECT `+rentalColumns+` FROM sms_rentals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get rental", zap.Error(err))
		return nil, err
	}
	return rental, nil
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch rentals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			zap.L().Error("failed to scan rental row", zap.Error(err))
			return nil, err
		}
		rentals = append(rentals, *rental)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate rentals", zap.Error(err))
		return nil, err
	}
	return rentals, nil
}

func (repo *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.Rental, error) {
	return repo.list(ctx, `SELECT `+rentalColumns+` FROM sms_rentals WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
}

// ListActive returns rentals still waiting on the provider, soonest deadline first.
func (repo *Repository) ListActive(ctx context.Context, limit int) ([]domain.Rental, error) {
	return repo.list(ctx, `SELECT `+rentalColumns+` FROM sms_rentals WHERE status IN ($1, $2) ORDER BY expires_at ASC LIMIT $3`,
		domain.RentalWaitingNumber, domain.RentalWaitingCode, limit)
}

// Transition stores the rental's new state only while the stored row is
// still active. It reports false when another writer finished it first.
func (repo *Repository) Transition(ctx context.Context, rental *domain.Rental) (bool, error) {
	query := `
		UPDATE sms_rentals
		SET phone_number = $1, code = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND status IN ($5, $6)
		RETURNING updated_at
	`
	err := repo.db.QueryRow(ctx, query, rental.PhoneNumber, rental.Code, rental.Status, rental.ID,
		domain.RentalWaitingNumber, domain.RentalWaitingCode).Scan(&rental.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("failed to update rental", zap.Error(err))
		return false, err
	}
	return true, nil
}
