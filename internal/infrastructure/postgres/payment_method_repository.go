package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación del puerto PaymentMethodRepository sobre PostgreSQL (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un método de pago.
func (r *PaymentMethodRepo) Create(pm *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, user_id, type, last_four, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		pm.ID, pm.UserID, pm.Type, pm.LastFour, pm.IsDefault, pm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un método de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `
		SELECT id, user_id, type, last_four, is_default, created_at
		FROM payment_methods WHERE id = $1`
	var pm entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&pm.ID, &pm.UserID, &pm.Type, &pm.LastFour, &pm.IsDefault, &pm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &pm, nil
}

// ListByUser lista los métodos de pago de un usuario (default primero).
func (r *PaymentMethodRepo) ListByUser(userID string) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, user_id, type, last_four, is_default, created_at
		FROM payment_methods WHERE user_id = $1 ORDER BY is_default DESC, created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.UserID, &pm.Type, &pm.LastFour, &pm.IsDefault, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}

// Delete elimina un método de pago por ID.
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
