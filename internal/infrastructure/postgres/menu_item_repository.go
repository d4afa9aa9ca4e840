package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL (usable con pool o tx).
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// ListByRestaurant lista el menú de un restaurante, agrupado por categoría.
func (r *MenuItemRepo) ListByRestaurant(restaurantID string) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, category, image_url, created_at, updated_at
		FROM menu_items WHERE restaurant_id = $1 ORDER BY category, name`
	return r.list(query, restaurantID)
}

// ListByIDs resuelve ítems de menú por id; los ausentes no vienen en el resultado.
func (r *MenuItemRepo) ListByIDs(ids []string) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, category, image_url, created_at, updated_at
		FROM menu_items WHERE id = ANY($1)`
	return r.list(query, ids)
}

func (r *MenuItemRepo) list(query string, arg any) ([]*entity.MenuItem, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var mi entity.MenuItem
		if err := rows.Scan(&mi.ID, &mi.RestaurantID, &mi.Name, &mi.Description, &mi.Price, &mi.Category, &mi.ImageURL, &mi.CreatedAt, &mi.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &mi)
	}
	return list, rows.Err()
}
