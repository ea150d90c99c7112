package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

const (
	tokenTTL          = 12 * time.Hour
	minPasswordLength = 8
	referralCodeLen   = 8
	virtualAccountLen = 10
	emailConstraint   = "users_email_key"
)

var (
	ErrUserExists          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
	ErrInvalidReferralCode = errors.New("invalid referral code")
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Get(ctx context.Context, userID int) (*domain.Profile, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Profile, error)
}

type Service struct {
	users       UserRepo
	profiles    ProfileRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	backoff     func() retry.Backoff
}

func New(users UserRepo, profiles ProfileRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		users:       users,
		profiles:    profiles,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(4, retry.NewConstant(10*time.Millisecond))
		},
	}
}

// Register creates the user together with its profile. The referral code and
// virtual account number are generated here and regenerated when they collide
// with an existing profile.
func (s *Service) Register(ctx context.Context, email, password, fullName, referralCode string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validate.Email(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrUserExists
	}

	referredBy, err := s.referrer(ctx, strings.TrimSpace(referralCode))
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	var user *domain.User
	err = retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			created, err := s.users.Create(ctx, &domain.User{Email: email, PasswordHash: hashedPassword})
			if err != nil {
				return err
			}
			_, err = s.profiles.Create(ctx, &domain.Profile{
				UserID:               created.ID,
				Email:                email,
				FullName:             strings.TrimSpace(fullName),
				ReferralCode:         validate.NewLunaNumber(referralCodeLen),
				ReferredBy:           referredBy,
				VirtualAccountNumber: validate.NewLunaNumber(virtualAccountLen),
			})
			if err != nil {
				return err
			}
			user = created
			return nil
		})
		switch constraint := pg.ViolatedConstraint(err); {
		case err == nil:
			return nil
		case constraint == emailConstraint:
			return ErrUserExists
		case constraint != "":
			zap.L().Warn("generated code collided, retrying", zap.String("constraint", constraint))
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err != nil {
		zap.L().Error("can't register user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email), zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) referrer(ctx context.Context, code string) (*int, error) {
	if code == "" {
		return nil, nil
	}
	if !validate.IsLuna(code) {
		return nil, ErrInvalidReferralCode
	}
	profile, err := s.profiles.FindByReferralCode(ctx, code)
	if err != nil {
		zap.L().Error("can't find referrer", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidReferralCode
	}
	return &profile.UserID, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

// GenerateToken issues a token carrying the user's current admin flag.
func (s *Service) GenerateToken(ctx context.Context, userID int) (string, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		zap.L().Error("can't load profile", zap.Error(err))
		return "", err
	}
	isAdmin := profile != nil && profile.IsAdmin

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
