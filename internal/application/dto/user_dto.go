package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en use case).
// Role es opcional; por defecto MEMBER.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"omitempty,max=200"`
	Role      string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER MEMBER"`
	CountryID string `json:"country_id" validate:"required,uuid"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Role      string           `json:"role"`
	CountryID string           `json:"country_id"`
	Country   *CountryResponse `json:"country,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// AuthResponse salida de signup/login con el token JWT.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
