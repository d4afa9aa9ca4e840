package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order/OrderItem (DIP).
// Las mutaciones del carrito compartido (Create/AddItems/AddToTotal) deben
// ejecutarse dentro de una transacción (ver order.TxRunner) para sostener el
// invariante de una sola orden PENDING por restaurante.
type OrderRepository interface {
	// Create inserta la orden y sus líneas. Si ya existe una orden PENDING para
	// el restaurante (índice único parcial), retorna domain.ErrDuplicate para
	// que el caso de uso reintente como append sobre la sobreviviente.
	Create(order *entity.Order) error

	// GetPendingByRestaurant devuelve la orden PENDING del restaurante o nil.
	// Dentro de una transacción bloquea la fila (SELECT ... FOR UPDATE) para
	// serializar appends concurrentes.
	GetPendingByRestaurant(restaurantID string) (*entity.Order, error)

	// AddItems agrega líneas nuevas a una orden existente (nunca fusiona líneas).
	AddItems(orderID string, items []entity.OrderItem) error

	// AddToTotal incrementa el total acumulado de la orden.
	AddToTotal(orderID string, delta decimal.Decimal) error

	// GetByID devuelve la orden con Items (incluyendo MenuItem) y Restaurant
	// cargados, o nil si no existe.
	GetByID(id string) (*entity.Order, error)

	// ListVisible devuelve las órdenes visibles según la regla 3 del evaluador:
	// propias ∪ PENDING del país, ordenadas por created_at descendente.
	ListVisible(userID, countryID string) ([]*entity.Order, error)

	// UpdateStatus aplica una transición de estado; paidAt solo se setea al pasar a PAID.
	UpdateStatus(orderID, status string, paidAt *time.Time) error
}
