package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralSummaryResponseDTO struct {
	ReferralCode  string          `json:"referral_code" example:"12345674"`
	TotalEarnings decimal.Decimal `json:"total_earnings" swaggertype:"string" example:"750.00"`
	Withdrawn     decimal.Decimal `json:"withdrawn" swaggertype:"string" example:"500.00"`
	Available     decimal.Decimal `json:"available" swaggertype:"string" example:"250.00"`
	ReferredCount int             `json:"referred_count" example:"3"`
}

type WithdrawalRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"500"`
	Destination   string          `json:"destination" validate:"required,oneof=bank wallet" example:"bank"`
	BankName      string          `json:"bank_name,omitempty" validate:"required_if=Destination bank" example:"Access Bank"`
	AccountNumber string          `json:"account_number,omitempty" validate:"required_if=Destination bank,omitempty,numeric,len=10" example:"0123456789"`
	AccountName   string          `json:"account_name,omitempty" validate:"required_if=Destination bank" example:"Ada Obi"`
}

type WithdrawalResponseDTO struct {
	ID            int             `json:"id" example:"9"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
	Destination   string          `json:"destination" example:"bank"`
	BankName      string          `json:"bank_name,omitempty" example:"Access Bank"`
	AccountNumber string          `json:"account_number,omitempty" example:"0123456789"`
	AccountName   string          `json:"account_name,omitempty" example:"Ada Obi"`
	Status        string          `json:"status" example:"pending"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty" example:"2024-05-02T09:00:00Z"`
}
