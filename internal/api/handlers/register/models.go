package register

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/service/auth"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// FromLoginResult конвертирует результат регистрации в HTTP response
func FromLoginResult(result *auth.LoginResult) *RegisterResponse {
	return &RegisterResponse{
		Token: result.Token,
		ID:    result.Principal.ID,
		Name:  result.Name,
		Role:  string(result.Principal.Role),
	}
}
