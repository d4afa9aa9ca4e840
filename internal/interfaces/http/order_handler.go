package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/application/order"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/access"
)

// OrderHandler expone el motor de agregación de órdenes.
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden o agregar al carrito compartido del restaurante
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "restaurant_id + ítems"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id es requerido"})
	}
	out, err := h.uc.CreateOrUpdateCart(c.Context(), Principal(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyItems):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_ITEM_LIST", Message: "la orden requiere al menos un ítem"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada ítem requiere menu_item_id y quantity >= 1"})
		case errors.Is(err, domain.ErrCrossCountry):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonCrossCountry, Message: "no puedes ordenar de restaurantes de otro país"})
		case errors.Is(err, domain.ErrMenuItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MENU_ITEM_NOT_FOUND", Message: "algún ítem no existe en este restaurante"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes visibles (propias + PENDING del país)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(Principal(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Checkout de una orden (PENDING → PAID)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	return h.settle(c, h.uc.Checkout)
}

// Cancel godoc
// @Summary      Cancelar una orden (PENDING → CANCELLED)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	return h.settle(c, h.uc.Cancel)
}

func (h *OrderHandler) settle(c *fiber.Ctx, fn func(ctx context.Context, p access.Principal, orderID string) (*dto.OrderResponse, error)) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := fn(c.Context(), Principal(c), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "orden no encontrada"})
		case errors.Is(err, domain.ErrRoleForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonRoleForbidden, Message: "los MEMBER no pueden hacer checkout ni cancelar órdenes"})
		case errors.Is(err, domain.ErrNotAuthorized):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonNotAuthorized, Message: "no es tu orden ni pertenece a tu país"})
		case errors.Is(err, domain.ErrInvalidOrderState):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "la orden ya no está en estado PENDING"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
