package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/application/usecase"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/access"
)

// PaymentMethodHandler expone los métodos de pago (solo ADMIN).
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler construye el handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar un método de pago
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPaymentMethodRequest  true  "type, last_four"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	var in dto.AddPaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Type == "" || in.LastFour == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type y last_four son requeridos"})
	}
	out, err := h.uc.Create(Principal(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrRoleForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonRoleForbidden, Message: "solo ADMIN administra métodos de pago"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mis métodos de pago
// @Tags         payment-methods
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/payment-methods [get]
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(Principal(c))
	if err != nil {
		if errors.Is(err, domain.ErrRoleForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonRoleForbidden, Message: "solo ADMIN administra métodos de pago"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un método de pago propio
// @Tags         payment-methods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del método de pago"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(Principal(c), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "método de pago no encontrado"})
		case errors.Is(err, domain.ErrRoleForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonRoleForbidden, Message: "solo ADMIN administra métodos de pago"})
		case errors.Is(err, domain.ErrNotAuthorized):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: access.ReasonNotAuthorized, Message: "el método de pago no te pertenece"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
