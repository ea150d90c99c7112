package dto

type RegisterRequestDTO struct {
	Email        string `json:"email" validate:"required,email,max=254" example:"ada@example.com"`
	Password     string `json:"password" validate:"required,min=8,max=72" example:"secret-pass"`
	Name         string `json:"name" validate:"max=100" example:"Ada Obi"`
	ReferralCode string `json:"referral_code,omitempty" validate:"omitempty,numeric,len=8,luhn" example:"12345674"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"secret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
