package rentalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/loghub/internal/domain"
)

var (
	columns = []string{"id", "user_id", "provider_rental_id", "service", "country", "phone_number", "code", "status",
		"charged_price", "expires_at", "created_at", "updated_at"}
	stamp = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	rental := &domain.Rental{
		ID:               uuid.New(),
		UserID:           1,
		ProviderRentalID: "act-1",
		Service:          "whatsapp",
		Country:          "ng",
		PhoneNumber:      "2348012345678",
		Status:           domain.RentalWaitingCode,
		ChargedPrice:     decimal.RequireFromString("350"),
		ExpiresAt:        stamp.Add(20 * time.Minute),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sms_rentals")).
		WithArgs(rental.ID, 1, "act-1", "whatsapp", "ng", "2348012345678", "", domain.RentalWaitingCode, pgxmock.AnyArg(), rental.ExpiresAt).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(stamp, stamp))

	require.NoError(t, repo.Create(context.Background(), rental))
	assert.Equal(t, stamp, rental.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta("FROM sms_rentals WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		wantNil   bool
		expectErr bool
	}{
		{
			name: "Found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnRows(pgxmock.NewRows(columns).
					AddRow(id, 1, "act-1", "whatsapp", "ng", "2348012345678", "", domain.RentalWaitingCode, "350.00", stamp, stamp, stamp))
			},
		},
		{
			name: "Not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(errors.New("timeout"))
			},
			wantNil:   true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rental, err := repo.Get(context.Background(), id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, rental)
			} else {
				require.NotNil(t, rental)
				assert.Equal(t, domain.RentalWaitingCode, rental.Status)
				assert.Equal(t, "350", rental.ChargedPrice.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status IN ($1, $2) ORDER BY expires_at ASC LIMIT $3")).
		WithArgs(domain.RentalWaitingNumber, domain.RentalWaitingCode, 1000).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), 1, "act-1", "whatsapp", "ng", "", "", domain.RentalWaitingNumber, "350.00", stamp, stamp, stamp).
			AddRow(uuid.New(), 2, "act-2", "telegram", "ng", "2348012345678", "", domain.RentalWaitingCode, "200.00", stamp.Add(time.Minute), stamp, stamp))

	rentals, err := repo.ListActive(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, "act-1", rentals[0].ProviderRentalID)
	assert.Equal(t, domain.RentalWaitingCode, rentals[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs(1, 50).
		WillReturnError(errors.New("timeout"))

	rentals, err := repo.ListByUser(context.Background(), 1, 50)
	assert.Error(t, err)
	assert.Nil(t, rentals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Transition(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE sms_rentals SET phone_number = $1, code = $2, status = $3")
	rental := &domain.Rental{ID: uuid.New(), PhoneNumber: "2348012345678", Code: "482913", Status: domain.RentalCodeReceived}

	tests := []struct {
		name      string
		mockSetup func()
		updated   bool
		expectErr bool
	}{
		{
			name: "Active row updated",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("2348012345678", "482913", domain.RentalCodeReceived, rental.ID, domain.RentalWaitingNumber, domain.RentalWaitingCode).
					WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(stamp))
			},
			updated: true,
		},
		{
			name: "Already terminal",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("timeout"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.Transition(context.Background(), rental)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
