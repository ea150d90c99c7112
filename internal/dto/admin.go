package dto

import "github.com/shopspring/decimal"

type AdjustBalanceRequestDTO struct {
	Action string `json:"action" validate:"required,oneof=add deduct" example:"add"`
	Amount string `json:"amount" validate:"required,positive_decimal" example:"200"`
	Reason string `json:"reason" validate:"notblank,max=255" example:"correction"`
}

type AdjustBalanceResponseDTO struct {
	Success         bool            `json:"success" example:"true"`
	PreviousBalance decimal.Decimal `json:"previous_balance" swaggertype:"string" example:"1000.00"`
	NewBalance      decimal.Decimal `json:"new_balance" swaggertype:"string" example:"1200.00"`
	Error           string          `json:"error,omitempty"`
}

type ReconcileResponseDTO struct {
	UserID        int             `json:"user_id" example:"1"`
	WalletBalance decimal.Decimal `json:"wallet_balance" swaggertype:"string" example:"1200.00"`
	LedgerSum     decimal.Decimal `json:"ledger_sum" swaggertype:"string" example:"1200.00"`
	Drift         decimal.Decimal `json:"drift" swaggertype:"string" example:"0"`
	Consistent    bool            `json:"consistent" example:"true"`
}

type WithdrawalDecisionRequestDTO struct {
	Action string `json:"action" validate:"required,oneof=approve reject" example:"approve"`
}

type CreateProductRequestDTO struct {
	Name     string          `json:"name" validate:"notblank,max=120" example:"Facebook aged account"`
	Category string          `json:"category" validate:"notblank,max=60" example:"facebook"`
	Price    decimal.Decimal `json:"price" validate:"gt=0" swaggertype:"string" example:"1200.00"`
}

type AddItemsRequestDTO struct {
	Credentials []string `json:"credentials" validate:"min=1,dive,notblank"`
}

type AddItemsResponseDTO struct {
	Added int `json:"added" example:"10"`
}
