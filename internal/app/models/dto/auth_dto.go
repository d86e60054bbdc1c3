package dto

import "github.com/oguzk/unienroll/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtResponse is the login response: the bearer token plus the
// authenticated user record.
type JwtResponse struct {
	Token string      `json:"token"`
	Type  string      `json:"type" example:"Bearer"`
	User  models.User `json:"user"`
}
