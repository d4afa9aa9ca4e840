package repository

import "github.com/tu-usuario/food-orders/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
type MenuItemRepository interface {
	ListByRestaurant(restaurantID string) ([]*entity.MenuItem, error)
	// ListByIDs resuelve ítems por id; los ids ausentes simplemente no vienen
	// en el resultado (el caso de uso decide si eso es error).
	ListByIDs(ids []string) ([]*entity.MenuItem, error)
}
