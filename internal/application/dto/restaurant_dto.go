package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountryResponse salida de un país.
type CountryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// RestaurantResponse salida de un restaurante. MenuItems solo viene poblado
// en el detalle (GET /restaurants/:id); el listado va sin menú.
type RestaurantResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url,omitempty"`
	CountryID   string             `json:"country_id"`
	Country     *CountryResponse   `json:"country,omitempty"`
	MenuItems   []MenuItemResponse `json:"menu_items,omitempty"`
}

// MenuItemResponse salida de un ítem de menú.
type MenuItemResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
