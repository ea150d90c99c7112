package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/pg"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

type mocks struct {
	users    *MockUserRepo
	profiles *MockProfileRepo
	hash     *auth.MockHashServiceInterface
	jwt      *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:    NewMockUserRepo(ctrl),
		profiles: NewMockProfileRepo(ctrl),
		hash:     auth.NewMockHashServiceInterface(ctrl),
		jwt:      auth.NewMockJWTServiceInterface(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.users, m.profiles, txManager, m.hash, m.jwt)
	service.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
	}
	return service, m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	referrer := &domain.Profile{UserID: 7, ReferralCode: "12345674"}
	created := func(ctx context.Context, user *domain.User) (*domain.User, error) {
		return &domain.User{ID: 1, Email: user.Email, PasswordHash: user.PasswordHash}, nil
	}
	profileOK := func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
		return p, nil
	}

	tests := []struct {
		name         string
		email        string
		password     string
		referralCode string
		prepareMock  func(m *mocks)
		expectedID   int
		expectedErr  error
	}{
		{
			name:     "Successful registration",
			email:    " Ada@Example.com ",
			password: "secret-pass",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret-pass").Return("hashed", nil)
				m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.profiles.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
					assert.Equal(t, 1, p.UserID)
					assert.Equal(t, "ada@example.com", p.Email)
					assert.Len(t, p.ReferralCode, 8)
					assert.True(t, validate.IsLuna(p.ReferralCode))
					assert.Len(t, p.VirtualAccountNumber, 10)
					assert.True(t, validate.IsLuna(p.VirtualAccountNumber))
					assert.Nil(t, p.ReferredBy)
					return p, nil
				})
			},
			expectedID: 1,
		},
		{
			name:         "Registration with referral code",
			email:        "bob@example.com",
			password:     "secret-pass",
			referralCode: "12345674",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, nil)
				m.profiles.EXPECT().FindByReferralCode(ctx, "12345674").Return(referrer, nil)
				m.hash.EXPECT().HashPassword("secret-pass").Return("hashed", nil)
				m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.profiles.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
					if assert.NotNil(t, p.ReferredBy) {
						assert.Equal(t, 7, *p.ReferredBy)
					}
					return p, nil
				})
			},
			expectedID: 1,
		},
		{
			name:        "Invalid email",
			email:       "not-an-email",
			password:    "secret-pass",
			prepareMock: func(m *mocks) {},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:        "Short password",
			email:       "ada@example.com",
			password:    "short",
			prepareMock: func(m *mocks) {},
			expectedErr: ErrWeakPassword,
		},
		{
			name:     "User already exists",
			email:    "ada@example.com",
			password: "secret-pass",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&domain.User{ID: 3}, nil)
			},
			expectedErr: ErrUserExists,
		},
		{
			name:         "Referral code fails Luhn check",
			email:        "ada@example.com",
			password:     "secret-pass",
			referralCode: "12345678",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
			},
			expectedErr: ErrInvalidReferralCode,
		},
		{
			name:         "Unknown referral code",
			email:        "ada@example.com",
			password:     "secret-pass",
			referralCode: "12345674",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
				m.profiles.EXPECT().FindByReferralCode(ctx, "12345674").Return(nil, nil)
			},
			expectedErr: ErrInvalidReferralCode,
		},
		{
			name:     "Concurrent registration hits email constraint",
			email:    "ada@example.com",
			password: "secret-pass",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret-pass").Return("hashed", nil)
				m.users.EXPECT().Create(ctx, gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			expectedErr: ErrUserExists,
		},
		{
			name:     "Generated code collision is retried",
			email:    "ada@example.com",
			password: "secret-pass",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret-pass").Return("hashed", nil)
				m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created).Times(2)
				gomock.InOrder(
					m.profiles.EXPECT().Create(ctx, gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "profiles_referral_code_key"}),
					m.profiles.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(profileOK),
				)
			},
			expectedID: 1,
		},
		{
			name:     "Error hashing password",
			email:    "ada@example.com",
			password: "secret-pass",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret-pass").Return("", errors.New("hashing error"))
			},
			expectedErr: errors.New("hashing error"),
		},
		{
			name:     "Error creating profile",
			email:    "ada@example.com",
			password: "secret-pass",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret-pass").Return("hashed", nil)
				m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.profiles.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Register(ctx, tt.email, tt.password, "Ada", tt.referralCode)
			if tt.expectedErr != nil {
				assert.Nil(t, user)
				if !errors.Is(err, tt.expectedErr) {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, user.ID)
			assert.Equal(t, "hashed", user.PasswordHash)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Successful authentication",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret-pass").Return(true)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret-pass").Return(false)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name: "Repository error",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, errors.New("db down"))
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Authenticate(ctx, "ADA@example.com", "secret-pass")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, user.ID)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedToken string
		expectedErr   bool
	}{
		{
			name: "Admin flag is carried into the token",
			prepareMock: func(m *mocks) {
				m.profiles.EXPECT().Get(ctx, 1).Return(&domain.Profile{UserID: 1, IsAdmin: true}, nil)
				m.jwt.EXPECT().GenerateJWT(1, true, gomock.Any()).Return("admin-token", nil)
			},
			expectedToken: "admin-token",
		},
		{
			name: "Regular user",
			prepareMock: func(m *mocks) {
				m.profiles.EXPECT().Get(ctx, 1).Return(&domain.Profile{UserID: 1}, nil)
				m.jwt.EXPECT().GenerateJWT(1, false, gomock.Any()).Return("user-token", nil)
			},
			expectedToken: "user-token",
		},
		{
			name: "Profile lookup fails",
			prepareMock: func(m *mocks) {
				m.profiles.EXPECT().Get(ctx, 1).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
		{
			name: "Signing fails",
			prepareMock: func(m *mocks) {
				m.profiles.EXPECT().Get(ctx, 1).Return(&domain.Profile{UserID: 1}, nil)
				m.jwt.EXPECT().GenerateJWT(1, false, gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			token, err := service.GenerateToken(ctx, 1)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}
