package tasks

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// TasksRepository интерфейс репозитория задач
type TasksRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.TaskDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
