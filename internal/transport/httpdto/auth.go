package httpdto

import "ai-tools-api/internal/domain/user"

// RegisterRequest is used for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is used for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the public view of a user. The password hash has no field here
// and can never leak into a response.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by register (201) and login (200).
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User UserDTO `json:"user"`
}

func NewUserDTO(u user.User) UserDTO {
	return UserDTO{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
	}
}
