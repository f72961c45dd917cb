package update_task_status

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type TasksService interface {
	UpdateStatus(ctx context.Context, principal domain.Principal, taskID int64, status domain.TaskStatus) (*domain.Task, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
