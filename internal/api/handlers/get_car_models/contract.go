package get_car_models

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type CarModelsService interface {
	List(ctx context.Context) ([]*domain.CarModel, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
