package dto

import "github.com/go-playground/validator/v10"

/* ===================== DTO ===================== */

// CreatePaymentIntentRequest: POST /api/create-payment-intent
type CreatePaymentIntentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (r *CreatePaymentIntentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// ConnectionTokenResponse: POST /api/connection-token
type ConnectionTokenResponse struct {
	Secret string `json:"secret"`
}
