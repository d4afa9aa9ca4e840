package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/food-orders/internal/application/auth"
	"github.com/tu-usuario/food-orders/internal/application/order"
	"github.com/tu-usuario/food-orders/internal/application/usecase"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	RestaurantUC    *usecase.RestaurantUseCase
	OrderUC         *order.UseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Countries (público, necesario antes del registro)
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	api.Get("/countries", restaurantHandler.Countries)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Restaurants (protegido, acotado al país del usuario)
	restaurants := protected.Group("/restaurants")
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Get("/:id/menu-items", restaurantHandler.ListMenu)

	// Orders (protegido; el carrito PENDING es compartido por restaurante)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Post("/:id/checkout", orderHandler.Checkout)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Payment methods (protegido, solo ADMIN)
	payments := protected.Group("/payment-methods", RequireRole(entity.RoleAdmin))
	paymentHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Delete("/:id", paymentHandler.Delete)
}
