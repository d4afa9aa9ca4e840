package entity

import "time"

// PaymentMethod pertenece a exactamente un usuario. Visibilidad y mutación
// son exclusivas del rol ADMIN (ver internal/domain/access).
type PaymentMethod struct {
	ID        string
	UserID    string
	Type      string // ej. "Credit Card", "Debit Card"
	LastFour  string
	IsDefault bool
	CreatedAt time.Time
}
