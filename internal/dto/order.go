package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductResponseDTO struct {
	ID       int             `json:"id" example:"4"`
	Name     string          `json:"name" example:"Facebook aged account"`
	Category string          `json:"category" example:"facebook"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"1200.00"`
	Stock    int             `json:"stock" example:"17"`
}

type CreateOrderRequestDTO struct {
	ProductID int `json:"product_id" validate:"gt=0" example:"4"`
	Quantity  int `json:"quantity" validate:"gte=1,lte=50" example:"2"`
}

type OrderResponseDTO struct {
	ID         int             `json:"id" example:"12"`
	Kind       string          `json:"kind" example:"logs"`
	ProductRef string          `json:"product_ref" example:"4"`
	Quantity   int             `json:"quantity" example:"2"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string" example:"1200.00"`
	Total      decimal.Decimal `json:"total" swaggertype:"string" example:"2400.00"`
	Status     string          `json:"status" example:"completed"`
	Response   string          `json:"response,omitempty" example:"user1:pass1"`
	CreatedAt  time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
}
