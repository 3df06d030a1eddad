package dto

import "barberia_backend/internal/models"

// UserResponse is the full user view returned to administrators.
type UserResponse struct {
	ID      uint              `json:"id"`
	Name    string            `json:"nombre"`
	Email   string            `json:"correo"`
	Role    models.UserRole   `json:"rol"`
	Status  models.UserStatus `json:"estado"`
	Profile *BarberProfileDTO `json:"perfil_barbero,omitempty"`
}

type BarberProfileDTO struct {
	Specialty  string `json:"especialidad"`
	Experience int    `json:"experiencia"`
}

// UserListFilter filters the admin user listing.
type UserListFilter struct {
	Role   models.UserRole   `form:"rol" validate:"omitempty,is-user-role"`
	Status models.UserStatus `form:"estado" validate:"omitempty,is-user-status"`
	Page   int               `form:"page"`
	Limit  int               `form:"limit"`
}

// UserListResponse is the paginated admin listing.
type UserListResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"usuarios"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

// UpdateUserRequest is a full replacement of a user's mutable fields.
// When Role is BARBERO the barber fields upsert the profile; any other
// role removes an existing profile.
type UpdateUserRequest struct {
	Name   string            `json:"nombre" binding:"required"`
	Email  string            `json:"correo" binding:"required,email"`
	Role   models.UserRole   `json:"rol" binding:"required,oneof=ADMIN BARBERO CLIENTE"`
	Status models.UserStatus `json:"estado" binding:"required,oneof=ACTIVO INACTIVO"`

	Specialty  string `json:"especialidad,omitempty"`
	Experience int    `json:"experiencia,omitempty"`
}

// NewUserResponse builds the response view from the model.
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
	if user.BarberProfile != nil {
		resp.Profile = &BarberProfileDTO{
			Specialty:  user.BarberProfile.Specialty,
			Experience: user.BarberProfile.Experience,
		}
	}
	return resp
}
