package repository

import "github.com/tu-usuario/food-orders/internal/domain/entity"

// PaymentMethodRepository define el puerto de persistencia para PaymentMethod (DIP).
type PaymentMethodRepository interface {
	Create(pm *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	ListByUser(userID string) ([]*entity.PaymentMethod, error)
	Delete(id string) error
}
