package order

import (
	"context"

	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de órdenes atado a esa tx. Es lo que serializa la secuencia
// leer-orden-pendiente → crear-o-agregar del carrito compartido.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
