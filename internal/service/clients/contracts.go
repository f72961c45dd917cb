package clients

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ClientsRepository интерфейс репозитория клиентов
type ClientsRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// CarsRepository интерфейс репозитория автомобилей
type CarsRepository interface {
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
