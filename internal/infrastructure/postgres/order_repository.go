package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// El índice único parcial orders_one_pending_per_restaurant (restaurant_id
// WHERE status = 'PENDING') es el mecanismo de última instancia contra órdenes
// PENDING duplicadas bajo carrera; dentro de una tx, GetPendingByRestaurant
// bloquea la fila sobreviviente para serializar los appends.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la orden y sus líneas. Retorna domain.ErrDuplicate si otra
// orden PENDING ganó la carrera para este restaurante.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, user_id, restaurant_id, status, total, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.UserID, order.RestaurantID, order.Status, order.Total,
		order.CreatedAt, order.PaidAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, order.Items)
}

// AddItems agrega líneas nuevas a una orden existente; nunca fusiona líneas,
// aunque repitan menu_item_id.
func (r *OrderRepo) AddItems(orderID string, items []entity.OrderItem) error {
	return r.insertItems(context.Background(), items)
}

func (r *OrderRepo) insertItems(ctx context.Context, items []entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, menu_item_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		if _, err := r.q.Exec(ctx, query,
			it.ID, it.OrderID, it.MenuItemID, it.Quantity, it.Price, it.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetPendingByRestaurant devuelve la orden PENDING del restaurante o nil.
// FOR UPDATE: dentro de una tx serializa a los contribuyentes concurrentes del
// mismo carrito (fuera de tx el lock se libera de inmediato y es inocuo).
func (r *OrderRepo) GetPendingByRestaurant(restaurantID string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, restaurant_id, status, total, created_at, paid_at
		FROM orders
		WHERE restaurant_id = $1 AND status = 'PENDING'
		FOR UPDATE`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, restaurantID).Scan(
		&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.Total, &o.CreatedAt, &o.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending order: %w", err)
	}
	return &o, nil
}

// AddToTotal incrementa el total acumulado de la orden.
func (r *OrderRepo) AddToTotal(orderID string, delta decimal.Decimal) error {
	query := `UPDATE orders SET total = total + $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, orderID, delta)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	return nil
}

// UpdateStatus aplica la transición de estado; paidAt solo viene al pasar a PAID.
func (r *OrderRepo) UpdateStatus(orderID, status string, paidAt *time.Time) error {
	query := `UPDATE orders SET status = $2, paid_at = COALESCE($3, paid_at) WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, orderID, status, paidAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// GetByID devuelve la orden con restaurante y líneas (con su ítem de menú)
// cargados, o nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	query := `
		SELECT o.id, o.user_id, o.restaurant_id, o.status, o.total, o.created_at, o.paid_at,
		       r.id, r.country_id, r.name, r.description, r.image_url, r.created_at, r.updated_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1`
	var o entity.Order
	var rest entity.Restaurant
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.Total, &o.CreatedAt, &o.PaidAt,
		&rest.ID, &rest.CountryID, &rest.Name, &rest.Description, &rest.ImageURL,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Restaurant = &rest

	itemsByOrder, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]
	return &o, nil
}

// ListVisible devuelve las órdenes propias más las PENDING del país (regla 3),
// ordenadas por created_at descendente, con restaurante y líneas cargados.
func (r *OrderRepo) ListVisible(userID, countryID string) ([]*entity.Order, error) {
	ctx := context.Background()
	query := `
		SELECT o.id, o.user_id, o.restaurant_id, o.status, o.total, o.created_at, o.paid_at,
		       r.id, r.country_id, r.name, r.description, r.image_url, r.created_at, r.updated_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = $1 OR (o.status = 'PENDING' AND r.country_id = $2)
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query, userID, countryID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		var rest entity.Restaurant
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.Total, &o.CreatedAt, &o.PaidAt,
			&rest.ID, &rest.CountryID, &rest.Name, &rest.Description, &rest.ImageURL,
			&rest.CreatedAt, &rest.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Restaurant = &rest
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = itemsByOrder[o.ID]
	}
	return list, nil
}

// loadItems carga en lote las líneas (con su ítem de menú) de varias órdenes.
func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.menu_item_id, i.quantity, i.price, i.created_at,
		       m.id, m.restaurant_id, m.name, m.description, m.price, m.category, m.image_url, m.created_at, m.updated_at
		FROM order_items i
		JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.created_at, i.id`
	rows, err := r.q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var it entity.OrderItem
		var mi entity.MenuItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Price, &it.CreatedAt,
			&mi.ID, &mi.RestaurantID, &mi.Name, &mi.Description, &mi.Price, &mi.Category,
			&mi.ImageURL, &mi.CreatedAt, &mi.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.MenuItem = &mi
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}
