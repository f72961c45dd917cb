package manage_clients

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ClientsService интерфейс сервиса клиентов
type ClientsService interface {
	GetByID(ctx context.Context, principal domain.Principal, id int64) (*domain.Client, error)
	ListCars(ctx context.Context, principal domain.Principal, clientID int64) ([]*domain.Car, error)
	List(ctx context.Context, principal domain.Principal) ([]*domain.Client, error)
	Update(ctx context.Context, principal domain.Principal, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
