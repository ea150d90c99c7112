package dto

import "github.com/shopspring/decimal"

type PlanResponseDTO struct {
	ID      string          `json:"id" example:"mtn-1gb"`
	Network string          `json:"network" example:"mtn"`
	Name    string          `json:"name" example:"1GB 30 days"`
	Price   decimal.Decimal `json:"price" swaggertype:"string" example:"300.00"`
}

type DataRequestDTO struct {
	Network string `json:"network" validate:"required,oneof=mtn glo airtel 9mobile" example:"mtn"`
	PlanID  string `json:"plan_id" validate:"required" example:"mtn-1gb"`
	Phone   string `json:"phone" validate:"required,msisdn" example:"08031234567"`
}

type AirtimeRequestDTO struct {
	Network string          `json:"network" validate:"required,oneof=mtn glo airtel 9mobile" example:"glo"`
	Amount  decimal.Decimal `json:"amount" validate:"gte=50,lte=50000" swaggertype:"string" example:"500"`
	Phone   string          `json:"phone" validate:"required,msisdn" example:"08051234567"`
}
