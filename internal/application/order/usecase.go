// Package order implementa el motor de agregación de órdenes: el ciclo de vida
// del carrito compartido por restaurante (crear/agregar, listar, checkout,
// cancelar) bajo las reglas del evaluador de acceso.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/access"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

// Reintentos del camino crear-carrito cuando dos callers compiten por ser el
// primero: el índice único parcial deja sobrevivir una sola orden PENDING y el
// perdedor reintenta como append sobre la sobreviviente.
const maxCreateAttempts = 3

// UseCase motor de agregación de órdenes.
type UseCase struct {
	tx             TxRunner
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuItemRepository
}

// NewUseCase construye el motor con sus dependencias.
func NewUseCase(tx TxRunner, orderRepo repository.OrderRepository, restaurantRepo repository.RestaurantRepository, menuRepo repository.MenuItemRepository) *UseCase {
	return &UseCase{tx: tx, orderRepo: orderRepo, restaurantRepo: restaurantRepo, menuRepo: menuRepo}
}

// CreateOrUpdateCart agrega ítems al carrito compartido del restaurante. Si no
// existe orden PENDING crea una nueva a nombre del principal; si existe, las
// líneas se agregan a la orden sobreviviente y el creador original no cambia.
// La llamada aplica todos los ítems o ninguno.
func (uc *UseCase) CreateOrUpdateCart(ctx context.Context, p access.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}
	ids := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 || it.MenuItemID == "" {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, it.MenuItemID)
	}

	restaurant, err := uc.restaurantRepo.GetByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	// Restaurante inexistente se trata igual que restaurante de otro país:
	// el caller no distingue recursos ajenos de recursos que no existen.
	if restaurant == nil {
		return nil, domain.ErrCrossCountry
	}
	if d := access.CanCreateOrder(p, restaurant); !d.Allowed {
		return nil, domain.ErrCrossCountry
	}

	resolved, err := uc.menuRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.MenuItem, len(resolved))
	for _, mi := range resolved {
		byID[mi.ID] = mi
	}

	// Ningún id puede quedar sin resolver ni apuntar a otro restaurante:
	// la orden no se crea parcialmente.
	incremental := decimal.Zero
	for _, it := range in.Items {
		mi, ok := byID[it.MenuItemID]
		if !ok || mi.RestaurantID != in.RestaurantID {
			return nil, domain.ErrMenuItemNotFound
		}
		incremental = incremental.Add(mi.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	var orderID string
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
			pending, err := orders.GetPendingByRestaurant(in.RestaurantID)
			if err != nil {
				return err
			}
			if pending != nil {
				// Append: líneas nuevas siempre, aunque repitan menu_item_id,
				// y total acumulado. El UserID original queda intacto.
				orderID = pending.ID
				if err := orders.AddItems(pending.ID, uc.buildItems(pending.ID, in.Items, byID)); err != nil {
					return err
				}
				return orders.AddToTotal(pending.ID, incremental)
			}
			o := &entity.Order{
				ID:           uuid.New().String(),
				UserID:       p.UserID,
				RestaurantID: in.RestaurantID,
				Status:       entity.OrderStatusPending,
				Total:        incremental,
				CreatedAt:    time.Now(),
			}
			o.Items = uc.buildItems(o.ID, in.Items, byID)
			orderID = o.ID
			return orders.Create(o)
		})
		if errors.Is(err, domain.ErrDuplicate) {
			// Perdimos la carrera por la primera orden PENDING: la intención
			// se convierte en append sobre la que sobrevivió.
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	created, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

func (uc *UseCase) buildItems(orderID string, in []dto.OrderItemInput, byID map[string]*entity.MenuItem) []entity.OrderItem {
	now := time.Now()
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		mi := byID[it.MenuItemID]
		items = append(items, entity.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			MenuItemID: mi.ID,
			Quantity:   it.Quantity,
			Price:      mi.Price, // snapshot: inmutable aunque el menú cambie
			CreatedAt:  now,
		})
	}
	return items
}

// ListOrders devuelve las órdenes visibles para el principal: las propias más
// las PENDING de su país, en orden created_at descendente. Sin paginación: el
// volumen por país es acotado y el contrato es "devolver todo".
func (uc *UseCase) ListOrders(p access.Principal) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListVisible(p.UserID, p.CountryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		// El SQL ya aplica la regla 3; el evaluador re-decide para que la
		// matriz de visibilidad tenga una sola fuente de verdad.
		if d := access.CanReadOrder(p, o, restaurantCountry(o)); !d.Allowed {
			continue
		}
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Checkout transiciona PENDING → PAID y sella paidAt. MEMBER nunca puede;
// el resto requiere ser el creador o compartir país con el restaurante.
func (uc *UseCase) Checkout(ctx context.Context, p access.Principal, orderID string) (*dto.OrderResponse, error) {
	return uc.settle(ctx, p, orderID, entity.OrderStatusPaid)
}

// Cancel transiciona PENDING → CANCELLED bajo las mismas reglas que Checkout.
func (uc *UseCase) Cancel(ctx context.Context, p access.Principal, orderID string) (*dto.OrderResponse, error) {
	return uc.settle(ctx, p, orderID, entity.OrderStatusCancelled)
}

func (uc *UseCase) settle(ctx context.Context, p access.Principal, orderID, status string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if d := access.CanSettleOrder(p, o, restaurantCountry(o)); !d.Allowed {
		switch d.Reason {
		case access.ReasonRoleForbidden:
			return nil, domain.ErrRoleForbidden
		default:
			return nil, domain.ErrNotAuthorized
		}
	}
	// PAID y CANCELLED son terminales: re-transicionar es conflicto, no overwrite.
	if o.Status != entity.OrderStatusPending {
		return nil, domain.ErrInvalidOrderState
	}
	var paidAt *time.Time
	if status == entity.OrderStatusPaid {
		now := time.Now()
		paidAt = &now
	}
	if err := uc.orderRepo.UpdateStatus(o.ID, status, paidAt); err != nil {
		return nil, err
	}
	o.Status = status
	o.PaidAt = paidAt
	return toOrderResponse(o), nil
}

func restaurantCountry(o *entity.Order) string {
	if o.Restaurant == nil {
		return ""
	}
	return o.Restaurant.CountryID
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		line := dto.OrderItemResponse{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		}
		if it.MenuItem != nil {
			line.MenuItem = &dto.MenuItemResponse{
				ID:           it.MenuItem.ID,
				RestaurantID: it.MenuItem.RestaurantID,
				Name:         it.MenuItem.Name,
				Description:  it.MenuItem.Description,
				Price:        it.MenuItem.Price,
				Category:     it.MenuItem.Category,
				ImageURL:     it.MenuItem.ImageURL,
				CreatedAt:    it.MenuItem.CreatedAt,
			}
		}
		items = append(items, line)
	}
	out := &dto.OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
		PaidAt:       o.PaidAt,
		Items:        items,
	}
	if o.Restaurant != nil {
		out.Restaurant = &dto.RestaurantResponse{
			ID:          o.Restaurant.ID,
			Name:        o.Restaurant.Name,
			Description: o.Restaurant.Description,
			ImageURL:    o.Restaurant.ImageURL,
			CountryID:   o.Restaurant.CountryID,
		}
	}
	return out
}
