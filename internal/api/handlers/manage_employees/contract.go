package manage_employees

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type StaffService interface {
	Create(ctx context.Context, principal domain.Principal, employee *domain.Employee, password string) (*domain.Employee, error)
	GetByID(ctx context.Context, principal domain.Principal, id int64) (*domain.Employee, error)
	List(ctx context.Context, principal domain.Principal) ([]*domain.Employee, error)
	Update(ctx context.Context, principal domain.Principal, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
