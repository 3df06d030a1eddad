package dto

import "barberia_backend/internal/models"

// RegisterRequest - registration payload. Barber fields are required only
// when registering as BARBERO.
type RegisterRequest struct {
	Name     string          `json:"nombre" binding:"required"`
	Email    string          `json:"correo" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"rol" binding:"omitempty,oneof=ADMIN BARBERO CLIENTE"`

	// Barber extension fields
	Specialty  string `json:"especialidad,omitempty"`
	Experience int    `json:"experiencia,omitempty"`
}

// LoginRequest - login payload.
type LoginRequest struct {
	Email    string `json:"correo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - successful login body; the same token is also set as
// the HTTP-only session cookie.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
