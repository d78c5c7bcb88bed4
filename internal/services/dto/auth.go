package dto

import (
	"time"

	"pettime_backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
	Phone    string `json:"telefone"`
	Address  string `json:"endereco"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"novaSenha" validate:"required,min=6"`
}

// AuthResponse carries the signed token plus the public user view.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

type UserResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"nome"`
	Email     string          `json:"email"`
	Phone     string          `json:"telefone"`
	Address   string          `json:"endereco"`
	Role      models.UserRole `json:"tipo"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
