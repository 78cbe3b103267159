package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest defines the structure for registering a new user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// UserResponse defines the user data returned to the client.
// The password hash never leaves the service layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
