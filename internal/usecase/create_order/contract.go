package create_order

import (
	"context"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// OrdersRepository интерфейс репозитория заказов
type OrdersRepository interface {
	// ListByDate получает все заказы на конкретную дату
	// Внутри транзакции бронирования блокирует строки дня
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Order, error)
	// Create создает новый заказ
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// AttachServices привязывает услуги к заказу
	AttachServices(ctx context.Context, orderID int64, serviceIDs []int64) error
}

// ServicesRepository интерфейс репозитория услуг
type ServicesRepository interface {
	// GetByIDs получает набор услуг по списку ID
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

// CarsRepository интерфейс репозитория автомобилей
type CarsRepository interface {
	// GetByID получает автомобиль по ID
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	// Create создает новый автомобиль клиента
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
}

// CarModelsRepository интерфейс репозитория моделей автомобилей
type CarModelsRepository interface {
	// GetByID получает модель по ID
	GetByID(ctx context.Context, id int64) (*domain.CarModel, error)
}

// EmployeesRepository интерфейс репозитория сотрудников
type EmployeesRepository interface {
	// LeastLoadedMechanic возвращает механика с наименьшим числом незавершенных задач
	LeastLoadedMechanic(ctx context.Context) (*domain.Employee, error)
}

// TasksRepository интерфейс репозитория задач
type TasksRepository interface {
	// Create создает новую задачу
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
}

// TxManager интерфейс менеджера транзакций
// Вся запись бронирования выполняется в одной сериализуемой транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
