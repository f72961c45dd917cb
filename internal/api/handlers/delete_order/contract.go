package delete_order

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type OrdersService interface {
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
