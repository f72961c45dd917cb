package get_available_slots

import (
	"context"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// OrdersRepository интерфейс репозитория заказов
type OrdersRepository interface {
	// ListByDate получает все заказы на конкретную дату
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Order, error)
}

// ServicesRepository интерфейс репозитория услуг
type ServicesRepository interface {
	// GetByIDs получает набор услуг по списку ID
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
