package get_orders

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type OrdersService interface {
	ListForPrincipal(ctx context.Context, principal domain.Principal, filter domain.OrdersFilter) ([]*domain.OrderDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
