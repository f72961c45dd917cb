package register

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/service/auth"
)

type AuthService interface {
	RegisterClient(ctx context.Context, name, email, phone, password string) (*auth.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
