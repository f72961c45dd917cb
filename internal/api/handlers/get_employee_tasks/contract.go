package get_employee_tasks

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type TasksService interface {
	ListByEmployee(ctx context.Context, principal domain.Principal, employeeID int64) ([]*domain.TaskDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
