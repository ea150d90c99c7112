package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	UserID                int             `db:"user_id"`
	Email                 string          `db:"email"`
	FullName              string          `db:"full_name"`
	WalletBalance         decimal.Decimal `db:"wallet_balance"`
	ReferralCode          string          `db:"referral_code"`
	ReferredBy            *int            `db:"referred_by"`
	TotalReferralEarnings decimal.Decimal `db:"total_referral_earnings"`
	VirtualAccountNumber  string          `db:"virtual_account_number"`
	IsAdmin               bool            `db:"is_admin"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

type TransactionType string

const (
	TransactionDeposit            TransactionType = "deposit"
	TransactionPurchase           TransactionType = "purchase"
	TransactionRefund             TransactionType = "refund"
	TransactionReferralWithdrawal TransactionType = "referral_withdrawal"
	TransactionAdjustment         TransactionType = "adjustment"
	TransactionSMSVerification    TransactionType = "sms_verification"
	TransactionDebit              TransactionType = "debit"
)

// Direction reports the sign a ledger amount of this type must carry:
// 1 for credits, -1 for debits, 0 when either sign is allowed.
func (t TransactionType) Direction() int {
	switch t {
	case TransactionDeposit, TransactionRefund, TransactionReferralWithdrawal:
		return 1
	case TransactionPurchase, TransactionSMSVerification, TransactionDebit:
		return -1
	case TransactionAdjustment:
		return 0
	}
	return 0
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionPurchase, TransactionRefund, TransactionReferralWithdrawal,
		TransactionAdjustment, TransactionSMSVerification, TransactionDebit:
		return true
	}
	return false
}

// WalletTransaction is an immutable ledger line. Provider and Reference,
// when set, form the idempotency key of the row.
type WalletTransaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Type        TransactionType `db:"transaction_type"`
	Description string          `db:"description"`
	Provider    string          `db:"provider"`
	Reference   string          `db:"reference"`
	ActorID     *int            `db:"actor_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// LedgerEntry is a request to move a wallet balance by a signed amount.
type LedgerEntry struct {
	UserID      int
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	Provider    string
	Reference   string
	ActorID     *int
}

type AdminAdjustment struct {
	TargetUserID int
	AdminUserID  int
	Amount       decimal.Decimal
	Reason       string
}

type AdjustmentResult struct {
	Success         bool
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Error           string
}

type Reconciliation struct {
	UserID        int
	WalletBalance decimal.Decimal
	LedgerSum     decimal.Decimal
	Drift         decimal.Decimal
}

func (r Reconciliation) Consistent() bool {
	return r.Drift.IsZero()
}

type RentalStatus string

const (
	RentalWaitingNumber RentalStatus = "waiting_number"
	RentalWaitingCode   RentalStatus = "waiting_code"
	RentalCodeReceived  RentalStatus = "code_received"
	RentalCancelled     RentalStatus = "cancelled"
	RentalExpired       RentalStatus = "expired"
)

func (s RentalStatus) Terminal() bool {
	return s == RentalCodeReceived || s == RentalCancelled || s == RentalExpired
}

type Rental struct {
	ID               uuid.UUID       `db:"id"`
	UserID           int             `db:"user_id"`
	ProviderRentalID string          `db:"provider_rental_id"`
	Service          string          `db:"service"`
	Country          string          `db:"country"`
	PhoneNumber      string          `db:"phone_number"`
	Code             string          `db:"code"`
	Status           RentalStatus    `db:"status"`
	ChargedPrice     decimal.Decimal `db:"charged_price"`
	ExpiresAt        time.Time       `db:"expires_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// TimeRemaining is zero once the rental is terminal or past its deadline.
func (r Rental) TimeRemaining(now time.Time) time.Duration {
	if r.Status.Terminal() || !now.Before(r.ExpiresAt) {
		return 0
	}
	return r.ExpiresAt.Sub(now)
}

type Product struct {
	ID        int             `db:"id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	CreatedAt time.Time       `db:"created_at"`
}

type LogItem struct {
	ID          int    `db:"id"`
	ProductID   int    `db:"product_id"`
	Credentials string `db:"credentials"`
	OrderID     *int   `db:"order_id"`
}

type OrderKind string

const (
	OrderLogs    OrderKind = "logs"
	OrderData    OrderKind = "data"
	OrderAirtime OrderKind = "airtime"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
)

type Order struct {
	ID         int             `db:"id"`
	UserID     int             `db:"user_id"`
	Kind       OrderKind       `db:"kind"`
	ProductRef string          `db:"product_ref"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	Total      decimal.Decimal `db:"total"`
	Status     OrderStatus     `db:"status"`
	Response   string          `db:"response"`
	CreatedAt  time.Time       `db:"created_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

type WithdrawalDestination string

const (
	DestinationBank   WithdrawalDestination = "bank"
	DestinationWallet WithdrawalDestination = "wallet"
)

type WithdrawalRequest struct {
	ID            int                   `db:"id"`
	UserID        int                   `db:"user_id"`
	Amount        decimal.Decimal       `db:"amount"`
	Destination   WithdrawalDestination `db:"destination"`
	BankName      string                `db:"bank_name"`
	AccountNumber string                `db:"account_number"`
	AccountName   string                `db:"account_name"`
	Status        WithdrawalStatus      `db:"status"`
	CreatedAt     time.Time             `db:"created_at"`
	ProcessedAt   *time.Time            `db:"processed_at"`
}

type ReferralSummary struct {
	ReferralCode  string
	TotalEarnings decimal.Decimal
	Withdrawn     decimal.Decimal
	Available     decimal.Decimal
	ReferredCount int
}

// Deposit is a provider-confirmed payment awaiting credit.
type Deposit struct {
	Provider  string
	Reference string
	Email     string
	Account   string
	Amount    decimal.Decimal
}

type DepositResult struct {
	UserID     int
	NewBalance decimal.Decimal
	Duplicate  bool
}
