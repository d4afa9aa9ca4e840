package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL (usable con pool o tx).
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	query := `
		SELECT id, country_id, name, description, image_url, created_at, updated_at
		FROM restaurants WHERE id = $1`
	var rest entity.Restaurant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rest.ID, &rest.CountryID, &rest.Name, &rest.Description, &rest.ImageURL,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

// ListByCountry lista los restaurantes de un país, ordenados por nombre.
func (r *RestaurantRepo) ListByCountry(countryID string) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, country_id, name, description, image_url, created_at, updated_at
		FROM restaurants WHERE country_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, countryID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(&rest.ID, &rest.CountryID, &rest.Name, &rest.Description, &rest.ImageURL, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &rest)
	}
	return list, rows.Err()
}
