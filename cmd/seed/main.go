// seed limpia la base y la puebla con datos de demostración: dos países,
// seis usuarios (password123), seis restaurantes con su menú y métodos de pago.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/food-orders/internal/infrastructure/postgres"
	"github.com/tu-usuario/food-orders/pkg/config"
	"github.com/tu-usuario/food-orders/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type menuSeed struct {
	name        string
	description string
	price       string
	category    string
	imageURL    string
}

type restaurantSeed struct {
	name        string
	description string
	imageURL    string
	menu        []menuSeed
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Limpiar en orden inverso a las FK.
	for _, table := range []string{"order_items", "orders", "menu_items", "restaurants", "payment_methods", "users", "countries"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpiar tabla")
		}
	}
	log.Info().Msg("base de datos limpia")

	indiaID := uuid.NewString()
	usaID := uuid.NewString()
	for _, c := range []struct{ id, name, code string }{
		{indiaID, "India", "IN"},
		{usaID, "America", "US"},
	} {
		if _, err := pool.Exec(ctx,
			`INSERT INTO countries (id, name, code) VALUES ($1, $2, $3)`,
			c.id, c.name, c.code); err != nil {
			log.Fatal().Err(err).Str("country", c.code).Msg("insertar país")
		}
	}
	log.Info().Msg("países creados")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	users := []struct {
		email, name, role, countryID string
	}{
		{"admin@india.com", "Admin India", "ADMIN", indiaID},
		{"manager@india.com", "Manager India", "MANAGER", indiaID},
		{"member@india.com", "Member India", "MEMBER", indiaID},
		{"admin@usa.com", "Admin USA", "ADMIN", usaID},
		{"manager@usa.com", "Manager USA", "MANAGER", usaID},
		{"member@usa.com", "Member USA", "MEMBER", usaID},
	}
	userIDs := make(map[string]string, len(users))
	for _, u := range users {
		id := uuid.NewString()
		userIDs[u.email] = id
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (id, country_id, email, password_hash, name, role)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			id, u.countryID, u.email, string(hash), u.name, u.role); err != nil {
			log.Fatal().Err(err).Str("email", u.email).Msg("insertar usuario")
		}
	}
	log.Info().Msg("usuarios creados")

	restaurants := map[string][]restaurantSeed{
		indiaID: {
			{
				name:        "Spice Garden",
				description: "Authentic Indian cuisine with aromatic spices and traditional flavors",
				imageURL:    "https://images.unsplash.com/photo-1585937421612-70a008356fbe",
				menu: []menuSeed{
					{"Butter Chicken", "Creamy tomato-based curry with tender chicken", "12.99", "Main Course", "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398"},
					{"Palak Paneer", "Cottage cheese in spinach gravy", "10.99", "Main Course", "https://images.unsplash.com/photo-1601050690597-df0568f70950"},
					{"Garlic Naan", "Soft flatbread with garlic and butter", "3.99", "Breads", "https://images.unsplash.com/photo-1601050690117-90ac8c250689"},
					{"Samosa", "Crispy pastry with spiced potato filling", "4.99", "Appetizers", "https://images.unsplash.com/photo-1601050690104-e5fb3e2c4aed"},
				},
			},
			{
				name:        "Tandoor House",
				description: "Classic North Indian tandoori specialties and curries",
				imageURL:    "https://images.unsplash.com/photo-1517244683847-7456b63c5969",
				menu: []menuSeed{
					{"Chicken Tikka", "Marinated chicken grilled in tandoor", "14.99", "Main Course", "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0"},
					{"Dal Makhani", "Creamy black lentils with butter", "9.99", "Main Course", "https://images.unsplash.com/photo-1546833999-b9f581a1996d"},
					{"Paneer Tikka", "Grilled cottage cheese with spices", "11.99", "Appetizers", "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8"},
					{"Mango Lassi", "Sweet yogurt drink with mango", "4.99", "Beverages", "https://images.unsplash.com/photo-1589994965851-a8f479c573a9"},
				},
			},
			{
				name:        "Biryani Paradise",
				description: "Fragrant biryanis and Hyderabadi delicacies",
				imageURL:    "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8",
				menu: []menuSeed{
					{"Chicken Biryani", "Fragrant rice with spiced chicken", "15.99", "Main Course", "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8"},
					{"Mutton Biryani", "Aromatic rice with tender mutton", "17.99", "Main Course", "https://images.unsplash.com/photo-1633945274405-b6c8069047b0"},
					{"Raita", "Yogurt with cucumber and spices", "3.99", "Sides", "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398"},
					{"Gulab Jamun", "Sweet fried dumplings in syrup", "5.99", "Desserts", "https://images.unsplash.com/photo-1589301760014-d929f3979dbc"},
				},
			},
		},
		usaID: {
			{
				name:        "Burger Avenue",
				description: "Gourmet burgers and classic American comfort food",
				imageURL:    "https://images.unsplash.com/photo-1550547660-d9450f859349",
				menu: []menuSeed{
					{"Classic Cheeseburger", "Beef patty with cheese, lettuce, and tomato", "11.99", "Burgers", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd"},
					{"Bacon Burger", "Burger with crispy bacon and BBQ sauce", "13.99", "Burgers", "https://images.unsplash.com/photo-1553979459-d2229ba7433b"},
					{"French Fries", "Crispy golden fries", "4.99", "Sides", "https://images.unsplash.com/photo-1576107232684-1279f390859f"},
					{"Milkshake", "Creamy vanilla milkshake", "5.99", "Beverages", "https://images.unsplash.com/photo-1572490122747-3968b75cc699"},
				},
			},
			{
				name:        "Pizza Paradise",
				description: "Wood-fired pizzas with artisanal toppings",
				imageURL:    "https://images.unsplash.com/photo-1513104890138-7c749659a591",
				menu: []menuSeed{
					{"Margherita Pizza", "Classic pizza with tomato and mozzarella", "14.99", "Pizza", "https://images.unsplash.com/photo-1574071318508-1cdbab80d002"},
					{"Pepperoni Pizza", "Pizza topped with pepperoni slices", "16.99", "Pizza", "https://images.unsplash.com/photo-1628840042765-356cda07504e"},
					{"Caesar Salad", "Romaine lettuce with Caesar dressing", "8.99", "Salads", "https://images.unsplash.com/photo-1546793665-c74683f339c1"},
					{"Garlic Bread", "Toasted bread with garlic butter", "5.99", "Sides", "https://images.unsplash.com/photo-1573140401552-388e415f9f93"},
				},
			},
			{
				name:        "Steakhouse Prime",
				description: "Premium cuts and fine dining experience",
				imageURL:    "https://images.unsplash.com/photo-1544025162-d76694265947",
				menu: []menuSeed{
					{"Ribeye Steak", "12oz premium ribeye grilled to perfection", "32.99", "Steaks", "https://images.unsplash.com/photo-1600891964092-4316c288032e"},
					{"Filet Mignon", "Tender 8oz filet with red wine reduction", "38.99", "Steaks", "https://images.unsplash.com/photo-1558030137-a74f6ca0e2e7"},
					{"Mashed Potatoes", "Creamy mashed potatoes with butter", "6.99", "Sides", "https://images.unsplash.com/photo-1585505008861-b5e446d2c6ef"},
					{"Red Wine", "Premium red wine selection", "12.99", "Beverages", "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3"},
				},
			},
		},
	}

	for countryID, list := range restaurants {
		for _, r := range list {
			restaurantID := uuid.NewString()
			if _, err := pool.Exec(ctx,
				`INSERT INTO restaurants (id, country_id, name, description, image_url)
				 VALUES ($1, $2, $3, $4, $5)`,
				restaurantID, countryID, r.name, r.description, r.imageURL); err != nil {
				log.Fatal().Err(err).Str("restaurant", r.name).Msg("insertar restaurante")
			}
			for _, m := range r.menu {
				if _, err := pool.Exec(ctx,
					`INSERT INTO menu_items (id, restaurant_id, name, description, price, category, image_url)
					 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					uuid.NewString(), restaurantID, m.name, m.description, m.price, m.category, m.imageURL); err != nil {
					log.Fatal().Err(err).Str("item", m.name).Msg("insertar ítem de menú")
				}
			}
		}
	}
	log.Info().Msg("restaurantes y menús creados")

	paymentMethods := []struct {
		email, pmType, lastFour string
		isDefault               bool
	}{
		{"admin@india.com", "Credit Card", "4242", true},
		{"admin@india.com", "Debit Card", "5555", false},
		{"admin@usa.com", "Credit Card", "1234", true},
	}
	for _, pm := range paymentMethods {
		if _, err := pool.Exec(ctx,
			`INSERT INTO payment_methods (id, user_id, type, last_four, is_default)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), userIDs[pm.email], pm.pmType, pm.lastFour, pm.isDefault); err != nil {
			log.Fatal().Err(err).Str("user", pm.email).Msg("insertar método de pago")
		}
	}
	log.Info().Msg("métodos de pago creados")

	log.Info().Msg("seed completado; cuentas de prueba: admin|manager|member@india.com y @usa.com / password123")
}
