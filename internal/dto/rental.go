package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalRequestDTO struct {
	Service string `json:"service" validate:"required,max=32" example:"whatsapp"`
	Country string `json:"country" validate:"required,max=8" example:"ng"`
}

type RentalQuoteResponseDTO struct {
	Service string          `json:"service" example:"whatsapp"`
	Country string          `json:"country" example:"ng"`
	Price   decimal.Decimal `json:"price" swaggertype:"string" example:"350.00"`
}

type RentalResponseDTO struct {
	ID            string          `json:"id" example:"3f0e2c1a-8d7b-4a55-9b44-2b9f1c0d6e11"`
	Service       string          `json:"service" example:"whatsapp"`
	Country       string          `json:"country" example:"ng"`
	PhoneNumber   string          `json:"phone_number,omitempty" example:"2348012345678"`
	Code          string          `json:"code,omitempty" example:"123456"`
	Status        string          `json:"status" example:"waiting_code"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"350.00"`
	TimeRemaining int             `json:"time_remaining" example:"1140"`
	ExpiresAt     time.Time       `json:"expires_at" example:"2024-05-01T10:20:00Z"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
}
