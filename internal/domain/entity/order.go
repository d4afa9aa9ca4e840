package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden. Máquina de estados finita:
// PENDING -> PAID (terminal) o PENDING -> CANCELLED (terminal).
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

// Order es el carrito compartido por restaurante: a lo sumo existe una orden
// PENDING por restaurante y todos los usuarios del país del restaurante
// agregan ítems a esa misma orden. UserID es el creador original y nunca se
// reasigna al segundo contribuyente.
//
// Invariante: Total == Σ (item.Price × item.Quantity) después de cada mutación.
type Order struct {
	ID           string
	UserID       string // creador
	RestaurantID string
	Status       string // PENDING, PAID, CANCELLED
	Total        decimal.Decimal
	CreatedAt    time.Time
	PaidAt       *time.Time

	// Relaciones cargadas por el repositorio (eager) para conveniencia del caller.
	Items      []OrderItem
	Restaurant *Restaurant
}

// OrderItem es una línea de la orden. Price es snapshot del precio del ítem de
// menú al momento de agregarse y es inmutable una vez escrito. Agregar el mismo
// ítem de menú varias veces produce líneas adicionales, no se fusionan.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   int // >= 1
	Price      decimal.Decimal
	CreatedAt  time.Time

	MenuItem *MenuItem
}

// LineTotal devuelve Price × Quantity de la línea.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal recalcula la suma de las líneas. Útil para verificar el invariante
// del total en tests; la persistencia acumula el total, nunca lo edita suelto.
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
