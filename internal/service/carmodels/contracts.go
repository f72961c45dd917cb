package carmodels

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// CarModelsRepository интерфейс репозитория моделей автомобилей
type CarModelsRepository interface {
	Create(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error)
	GetByID(ctx context.Context, id int64) (*domain.CarModel, error)
	List(ctx context.Context) ([]*domain.CarModel, error)
	Update(ctx context.Context, model *domain.CarModel) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
