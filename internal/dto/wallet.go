package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Balance              decimal.Decimal `json:"balance" swaggertype:"string" example:"1500.00"`
	ReferralCode         string          `json:"referral_code" example:"12345674"`
	VirtualAccountNumber string          `json:"virtual_account_number" example:"8012345677"`
}

type TransactionResponseDTO struct {
	ID          string          `json:"id" example:"3f0e2c1a-8d7b-4a55-9b44-2b9f1c0d6e11"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"-250.00"`
	Type        string          `json:"type" example:"purchase"`
	Description string          `json:"description" example:"Purchase of 1 x Facebook logs"`
	Reference   string          `json:"reference,omitempty" example:"order:12"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
}
