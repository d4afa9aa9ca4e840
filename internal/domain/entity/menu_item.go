package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem pertenece a un restaurante. Price es el valor vigente del menú;
// al agregarse a una orden se copia como snapshot en OrderItem.Price, de modo
// que un cambio de precio posterior no altera totales de órdenes existentes.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Price        decimal.Decimal
	Category     string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
