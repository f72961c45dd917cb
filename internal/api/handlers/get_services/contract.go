package get_services

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
