package dto

import "time"

// AddPaymentMethodRequest entrada para registrar un método de pago (solo ADMIN).
type AddPaymentMethodRequest struct {
	Type      string `json:"type" validate:"required"`
	LastFour  string `json:"last_four" validate:"required,len=4,numeric"`
	IsDefault bool   `json:"is_default"`
}

// PaymentMethodResponse salida de un método de pago.
type PaymentMethodResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	LastFour  string    `json:"last_four"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
