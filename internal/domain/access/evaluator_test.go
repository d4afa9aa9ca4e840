package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/food-orders/internal/domain/access"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	countryIndia = "country-india"
	countryUSA   = "country-usa"
)

func principal(userID, role, countryID string) access.Principal {
	return access.Principal{UserID: userID, Role: role, CountryID: countryID}
}

func restaurantIn(countryID string) *entity.Restaurant {
	return &entity.Restaurant{ID: "rest-1", CountryID: countryID, Name: "Spice Garden"}
}

func orderOf(userID, status string) *entity.Order {
	return &entity.Order{ID: "order-1", UserID: userID, RestaurantID: "rest-1", Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 1 y 2 — lectura y creación acotadas al país
// ──────────────────────────────────────────────────────────────────────────────

func TestCanViewRestaurant_MismoPais_Permite(t *testing.T) {
	p := principal("u1", entity.RoleMember, countryIndia)
	d := access.CanViewRestaurant(p, restaurantIn(countryIndia))

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason, "al permitir no debe haber razón de negación")
}

func TestCanViewRestaurant_OtroPais_NiegaCrossCountry(t *testing.T) {
	// Ni siquiera el ADMIN cruza fronteras: el rol no entra en la regla 1.
	for _, role := range []string{entity.RoleAdmin, entity.RoleManager, entity.RoleMember} {
		p := principal("u1", role, countryUSA)
		d := access.CanViewRestaurant(p, restaurantIn(countryIndia))

		assert.False(t, d.Allowed, "rol %s no debe ver restaurantes de otro país", role)
		assert.Equal(t, access.ReasonCrossCountry, d.Reason)
	}
}

func TestCanCreateOrder_OtroPais_NiegaCrossCountry(t *testing.T) {
	p := principal("u1", entity.RoleAdmin, countryUSA)
	d := access.CanCreateOrder(p, restaurantIn(countryIndia))

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonCrossCountry, d.Reason)
}

func TestCanCreateOrder_MismoPais_Permite(t *testing.T) {
	p := principal("u1", entity.RoleMember, countryIndia)
	d := access.CanCreateOrder(p, restaurantIn(countryIndia))

	assert.True(t, d.Allowed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 3 — visibilidad de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestCanReadOrder_CreadorSiempreVe(t *testing.T) {
	p := principal("u1", entity.RoleMember, countryIndia)
	for _, status := range []string{entity.OrderStatusPending, entity.OrderStatusPaid, entity.OrderStatusCancelled} {
		d := access.CanReadOrder(p, orderOf("u1", status), countryIndia)
		assert.True(t, d.Allowed, "el creador debe ver su orden en estado %s", status)
	}
}

func TestCanReadOrder_PendingDelPais_VisibleParaTerceros(t *testing.T) {
	// El carrito compartido: cualquier usuario del país ve la orden PENDING ajena.
	p := principal("u2", entity.RoleMember, countryIndia)
	d := access.CanReadOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.True(t, d.Allowed)
}

func TestCanReadOrder_SettledAjena_SoloCreador(t *testing.T) {
	p := principal("u2", entity.RoleAdmin, countryIndia)
	for _, status := range []string{entity.OrderStatusPaid, entity.OrderStatusCancelled} {
		d := access.CanReadOrder(p, orderOf("u1", status), countryIndia)

		assert.False(t, d.Allowed, "orden %s ajena no debe ser visible", status)
		assert.Equal(t, access.ReasonNotAuthorized, d.Reason)
	}
}

func TestCanReadOrder_PendingOtroPais_Niega(t *testing.T) {
	p := principal("u2", entity.RoleManager, countryUSA)
	d := access.CanReadOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonNotAuthorized, d.Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 4 — checkout y cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCanSettleOrder_MemberSiempreNegado(t *testing.T) {
	// MEMBER queda fuera incluso siendo el creador y del mismo país.
	p := principal("u1", entity.RoleMember, countryIndia)
	d := access.CanSettleOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonRoleForbidden, d.Reason)
}

func TestCanSettleOrder_ManagerCreador_Permite(t *testing.T) {
	p := principal("u1", entity.RoleManager, countryIndia)
	d := access.CanSettleOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.True(t, d.Allowed)
}

func TestCanSettleOrder_AdminMismoPaisNoCreador_Permite(t *testing.T) {
	p := principal("u2", entity.RoleAdmin, countryIndia)
	d := access.CanSettleOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.True(t, d.Allowed, "compartir país con el restaurante basta para roles no MEMBER")
}

func TestCanSettleOrder_CreadorDesdeOtroPais_Permite(t *testing.T) {
	// Propiedad u país: cualquiera de las dos condiciones habilita.
	p := principal("u1", entity.RoleManager, countryUSA)
	d := access.CanSettleOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.True(t, d.Allowed)
}

func TestCanSettleOrder_NiCreadorNiPais_Niega(t *testing.T) {
	p := principal("u2", entity.RoleAdmin, countryUSA)
	d := access.CanSettleOrder(p, orderOf("u1", entity.OrderStatusPending), countryIndia)

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonNotAuthorized, d.Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 5 — métodos de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestCanManagePaymentMethods_SoloAdmin(t *testing.T) {
	assert.True(t, access.CanManagePaymentMethods(principal("u1", entity.RoleAdmin, countryIndia)).Allowed)

	for _, role := range []string{entity.RoleManager, entity.RoleMember} {
		d := access.CanManagePaymentMethods(principal("u1", role, countryIndia))

		assert.False(t, d.Allowed, "rol %s no administra métodos de pago", role)
		assert.Equal(t, access.ReasonRoleForbidden, d.Reason)
	}
}

func TestCanAccessPaymentMethod_AdminDueno_Permite(t *testing.T) {
	p := principal("u1", entity.RoleAdmin, countryIndia)
	pm := &entity.PaymentMethod{ID: "pm-1", UserID: "u1"}

	assert.True(t, access.CanAccessPaymentMethod(p, pm).Allowed)
}

func TestCanAccessPaymentMethod_AdminAjeno_NiegaNotAuthorized(t *testing.T) {
	p := principal("u2", entity.RoleAdmin, countryIndia)
	pm := &entity.PaymentMethod{ID: "pm-1", UserID: "u1"}
	d := access.CanAccessPaymentMethod(p, pm)

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonNotAuthorized, d.Reason)
}

func TestCanAccessPaymentMethod_RolInsuficiente_GanaRoleForbidden(t *testing.T) {
	// El gate de rol se evalúa antes que la propiedad.
	p := principal("u1", entity.RoleMember, countryIndia)
	pm := &entity.PaymentMethod{ID: "pm-1", UserID: "u1"}
	d := access.CanAccessPaymentMethod(p, pm)

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonRoleForbidden, d.Reason)
}
