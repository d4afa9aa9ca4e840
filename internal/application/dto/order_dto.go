package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput una línea solicitada: ítem de menú y cantidad (>= 1).
type OrderItemInput struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada de createOrder: agrega ítems al carrito compartido
// del restaurante (o crea la orden PENDING si no existe).
type CreateOrderRequest struct {
	RestaurantID string           `json:"restaurant_id" validate:"required,uuid"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderItemResponse una línea persistida, con su snapshot de precio.
type OrderItemResponse struct {
	ID         string            `json:"id"`
	MenuItemID string            `json:"menu_item_id"`
	Quantity   int               `json:"quantity"`
	Price      decimal.Decimal   `json:"price"`
	MenuItem   *MenuItemResponse `json:"menu_item,omitempty"`
}

// OrderResponse salida de una orden con líneas y restaurante eager-loaded.
type OrderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	RestaurantID string              `json:"restaurant_id"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	PaidAt       *time.Time          `json:"paid_at,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Restaurant   *RestaurantResponse `json:"restaurant,omitempty"`
}
