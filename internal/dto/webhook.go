package dto

import "github.com/shopspring/decimal"

type PaystackEventDTO struct {
	Event string            `json:"event"`
	Data  PaystackChargeDTO `json:"data"`
}

type PaystackChargeDTO struct {
	Reference string              `json:"reference"`
	Amount    decimal.Decimal     `json:"amount" swaggertype:"number" example:"500000"`
	Status    string              `json:"status"`
	Customer  PaystackCustomerDTO `json:"customer"`
}

type PaystackCustomerDTO struct {
	Email string `json:"email"`
}

type PaymentPointEventDTO struct {
	NotificationStatus string                  `json:"notification_status"`
	TransactionID      string                  `json:"transaction_id"`
	AmountPaid         decimal.Decimal         `json:"amount_paid" swaggertype:"number" example:"5000"`
	Receiver           PaymentPointReceiverDTO `json:"receiver"`
}

type PaymentPointReceiverDTO struct {
	AccountNumber string `json:"account_number"`
}

type WebhookResponseDTO struct {
	Message string `json:"message"`
}
