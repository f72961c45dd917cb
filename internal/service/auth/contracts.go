package auth

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ClientsRepository интерфейс репозитория клиентов
type ClientsRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
}

// EmployeesRepository интерфейс репозитория сотрудников
type EmployeesRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
