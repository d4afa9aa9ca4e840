// Package access concentra todas las reglas de autorización del sistema en un
// evaluador puro y sin efectos: dado un principal (identidad, rol, país) y un
// recurso, responde permitir o negar con una razón específica. Los casos de uso
// consultan este paquete en vez de repetir guards sueltos por operación, para
// que la matriz de reglas sea auditable y testeable de forma aislada.
package access

import "github.com/tu-usuario/food-orders/internal/domain/entity"

// Razones de negación. Viajan tal cual en las respuestas de error HTTP.
const (
	ReasonCrossCountry  = "CROSS_COUNTRY_ACCESS"
	ReasonRoleForbidden = "ROLE_FORBIDDEN"
	ReasonNotAuthorized = "NOT_AUTHORIZED"
)

// Principal es la identidad del caller autenticado, resuelta una vez por request.
type Principal struct {
	UserID    string
	Role      string // ADMIN, MANAGER, MEMBER
	CountryID string
}

// Decision es el resultado de evaluar una regla. Reason queda vacío al permitir.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

// CanViewRestaurant — regla 1: lectura de restaurante/menú solo dentro del
// propio país.
func CanViewRestaurant(p Principal, r *entity.Restaurant) Decision {
	if r.CountryID != p.CountryID {
		return deny(ReasonCrossCountry)
	}
	return allow()
}

// CanCreateOrder — regla 2: crear (o agregar al carrito compartido de) una
// orden solo contra restaurantes del propio país.
func CanCreateOrder(p Principal, r *entity.Restaurant) Decision {
	if r.CountryID != p.CountryID {
		return deny(ReasonCrossCountry)
	}
	return allow()
}

// CanReadOrder — regla 3: el principal ve una orden si es su creador, o si la
// orden está PENDING y su restaurante es del país del principal. Las órdenes
// pagadas o canceladas son visibles solo para su creador.
func CanReadOrder(p Principal, o *entity.Order, restaurantCountryID string) Decision {
	if o.UserID == p.UserID {
		return allow()
	}
	if o.Status == entity.OrderStatusPending && restaurantCountryID == p.CountryID {
		return allow()
	}
	return deny(ReasonNotAuthorized)
}

// CanSettleOrder — regla 4: checkout y cancel. MEMBER siempre queda fuera sin
// importar propiedad o país; para el resto, basta ser el creador o compartir
// país con el restaurante de la orden.
func CanSettleOrder(p Principal, o *entity.Order, restaurantCountryID string) Decision {
	if p.Role == entity.RoleMember {
		return deny(ReasonRoleForbidden)
	}
	if o.UserID == p.UserID || restaurantCountryID == p.CountryID {
		return allow()
	}
	return deny(ReasonNotAuthorized)
}

// CanManagePaymentMethods — regla 5 (parte de rol): crear/leer/borrar métodos
// de pago es exclusivo de ADMIN.
func CanManagePaymentMethods(p Principal) Decision {
	if p.Role != entity.RoleAdmin {
		return deny(ReasonRoleForbidden)
	}
	return allow()
}

// CanAccessPaymentMethod — regla 5 (parte de propiedad): además del rol, el
// método de pago objetivo debe pertenecer al principal.
func CanAccessPaymentMethod(p Principal, pm *entity.PaymentMethod) Decision {
	if d := CanManagePaymentMethods(p); !d.Allowed {
		return d
	}
	if pm.UserID != p.UserID {
		return deny(ReasonNotAuthorized)
	}
	return allow()
}
