package manage_services

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type CatalogService interface {
	Create(ctx context.Context, principal domain.Principal, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, principal domain.Principal, id int64, update domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
