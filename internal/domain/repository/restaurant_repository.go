package repository

import "github.com/tu-usuario/food-orders/internal/domain/entity"

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
type RestaurantRepository interface {
	GetByID(id string) (*entity.Restaurant, error)
	ListByCountry(countryID string) ([]*entity.Restaurant, error)
}
