package catalog

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ServicesRepository интерфейс репозитория услуг
type ServicesRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, update domain.ServiceUpdate) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
