package profilerepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
)

const profileColumns = `user_id, email, full_name, wallet_balance, referral_code, referred_by,
	total_referral_earnings, virtual_account_number, is_admin, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.Email, &p.FullName, &p.WalletBalance, &p.ReferralCode, &p.ReferredBy,
		&p.TotalReferralEarnings, &p.VirtualAccountNumber, &p.IsAdmin, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) findOne(ctx context.Context, op, query string, args ...any) (*domain.Profile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to "+op, zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, email, full_name, referral_code, referred_by, virtual_account_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns
	created, err := scanProfile(r.db.QueryRow(ctx, query, profile.UserID, strings.ToLower(profile.Email), profile.FullName,
		profile.ReferralCode, profile.ReferredBy, profile.VirtualAccountNumber))
	if err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, userID int) (*domain.Profile, error) {
	return r.findOne(ctx, "get profile", `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
}

// Lock reads the profile and holds its row lock until the surrounding
// transaction ends. Every balance mutation goes through it.
func (r *Repository) Lock(ctx context.Context, userID int) (*domain.Profile, error) {
	return r.findOne(ctx, "lock profile", `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.findOne(ctx, "find profile by email",
		`SELECT `+profileColumns+` FROM profiles WHERE LOWER(email) = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *Repository) FindByVirtualAccount(ctx context.Context, account string) (*domain.Profile, error) {
	return r.findOne(ctx, "find profile by virtual account",
		`SELECT `+profileColumns+` FROM profiles WHERE virtual_account_number = $1`, account)
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Profile, error) {
	return r.findOne(ctx, "find profile by referral code",
		`SELECT `+profileColumns+` FROM profiles WHERE referral_code = $1`, code)
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int, balance decimal.Decimal) error {
	query := `
		UPDATE profiles
		SET wallet_balance = $1, updated_at = NOW()
		WHERE user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) AddReferralEarnings(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
		UPDATE profiles
		SET total_referral_earnings = total_referral_earnings + $1, updated_at = NOW()
		WHERE user_id = $2
	`
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("failed to add referral earnings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountReferrals(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE referred_by = $1`, userID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count referrals", zap.Error(err))
		return 0, err
	}
	return count, nil
}
