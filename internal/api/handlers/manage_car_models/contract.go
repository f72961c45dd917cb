package manage_car_models

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type CarModelsService interface {
	Create(ctx context.Context, principal domain.Principal, model *domain.CarModel) (*domain.CarModel, error)
	Update(ctx context.Context, principal domain.Principal, model *domain.CarModel) (*domain.CarModel, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
