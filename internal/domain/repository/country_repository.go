package repository

import "github.com/tu-usuario/food-orders/internal/domain/entity"

// CountryRepository define el puerto de persistencia para Country (DIP).
// Solo lectura: los países se crean por seeding administrativo.
type CountryRepository interface {
	GetByID(id string) (*entity.Country, error)
	List() ([]*entity.Country, error)
}
