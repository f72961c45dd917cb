package login

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// FromLoginResult конвертирует результат входа в HTTP response
func FromLoginResult(result *auth.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		ID:    result.Principal.ID,
		Name:  result.Name,
		Role:  string(result.Principal.Role),
	}
}
