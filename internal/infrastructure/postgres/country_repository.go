package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

var _ repository.CountryRepository = (*CountryRepo)(nil)

// CountryRepo implementación del puerto CountryRepository sobre PostgreSQL (usable con pool o tx).
type CountryRepo struct {
	q Querier
}

// NewCountryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCountryRepository(q Querier) *CountryRepo {
	return &CountryRepo{q: q}
}

// GetByID obtiene un país por ID.
func (r *CountryRepo) GetByID(id string) (*entity.Country, error) {
	query := `SELECT id, name, code, created_at FROM countries WHERE id = $1`
	var c entity.Country
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return &c, nil
}

// List lista todos los países, ordenados por nombre.
func (r *CountryRepo) List() ([]*entity.Country, error) {
	query := `SELECT id, name, code, created_at FROM countries ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Country
	for rows.Next() {
		var c entity.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
