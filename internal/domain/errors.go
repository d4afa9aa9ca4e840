package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")

	// Autorización (ver internal/domain/access).
	ErrCrossCountry  = errors.New("el recurso pertenece a otro país")
	ErrRoleForbidden = errors.New("el rol no permite esta operación")
	ErrNotAuthorized = errors.New("no es tu recurso ni pertenece a tu país")

	// Motor de órdenes.
	ErrEmptyItems        = errors.New("la orden requiere al menos un ítem")
	ErrMenuItemNotFound  = errors.New("ítem de menú no encontrado en este restaurante")
	ErrInvalidOrderState = errors.New("la orden ya no está en estado PENDING")
)
