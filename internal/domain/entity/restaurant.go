package entity

import "time"

// Restaurant pertenece a exactamente un país; sus ítems de menú y sus órdenes
// heredan ese alcance de país.
type Restaurant struct {
	ID          string
	CountryID   string
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
