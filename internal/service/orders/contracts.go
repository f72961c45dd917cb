package orders

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// OrdersRepository интерфейс репозитория заказов
type OrdersRepository interface {
	GetDetails(ctx context.Context, id int64) (*domain.OrderDetails, error)
	List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.OrderDetails, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
