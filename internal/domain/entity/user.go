package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleMember  = "MEMBER"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleManager || s == RoleMember
}

// User representa un usuario del sistema. CountryID se fija en el registro:
// un usuario pertenece a exactamente un país durante toda su vida.
type User struct {
	ID           string
	CountryID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, MANAGER, MEMBER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
