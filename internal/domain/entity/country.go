package entity

import "time"

// Country representa un país/tenant del sistema. Datos de referencia inmutables:
// se crean por seeding administrativo y la lógica de aplicación nunca los muta.
type Country struct {
	ID        string
	Name      string
	Code      string // código único, ej. "IN", "US"
	CreatedAt time.Time
}
