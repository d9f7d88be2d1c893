package dto

import (
	"time"

	"tunzacare_backend/internal/models"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
	IDNumber  string `json:"id_number" validate:"required,max=20"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,is-user-role"`

	// Caregiver signups start with an empty profile, so location and
	// county are collected up front. Clients leave them blank.
	Location string `json:"location" validate:"required_if=Role caregiver,max=100"`
	County   string `json:"county" validate:"required_if=Role caregiver,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Role           models.UserRole `json:"role"`
	ProfilePicture string          `json:"profile_picture"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}
