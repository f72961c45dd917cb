package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	tasksRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/tasks"
)

type fakeTasksRepo struct {
	task          *domain.Task
	details       []*domain.TaskDetails
	updatedStatus domain.TaskStatus
}

func (f *fakeTasksRepo) GetByID(_ context.Context, _ int64) (*domain.Task, error) {
	if f.task == nil {
		return nil, tasksRepo.ErrTaskNotFound
	}
	return f.task, nil
}

func (f *fakeTasksRepo) ListByEmployee(_ context.Context, _ int64) ([]*domain.TaskDetails, error) {
	return f.details, nil
}

func (f *fakeTasksRepo) UpdateStatus(_ context.Context, _ int64, status domain.TaskStatus) error {
	f.updatedStatus = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestListByEmployee_Access(t *testing.T) {
	repo := &fakeTasksRepo{details: []*domain.TaskDetails{{}}}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	// Механик видит свои задачи
	list, err := svc.ListByEmployee(ctx, domain.Principal{ID: 5, Role: domain.RoleMechanic}, 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Чужие задачи механику недоступны
	_, err = svc.ListByEmployee(ctx, domain.Principal{ID: 5, Role: domain.RoleMechanic}, 6)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Менеджер видит задачи любого сотрудника
	_, err = svc.ListByEmployee(ctx, domain.Principal{ID: 1, Role: domain.RoleManager}, 5)
	assert.NoError(t, err)

	// Клиенту панель задач недоступна
	_, err = svc.ListByEmployee(ctx, domain.Principal{ID: 5, Role: domain.RoleClient}, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeTasksRepo{task: &domain.Task{ID: 9, EmployeeID: 5, Status: domain.TaskStatusPending}}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()
	mechanic := domain.Principal{ID: 5, Role: domain.RoleMechanic}

	task, err := svc.UpdateStatus(ctx, mechanic, 9, domain.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	assert.Equal(t, domain.TaskStatusInProgress, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeTasksRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), domain.Principal{ID: 5, Role: domain.RoleMechanic}, 9, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_ForeignTask(t *testing.T) {
	repo := &fakeTasksRepo{task: &domain.Task{ID: 9, EmployeeID: 5}}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, domain.Principal{ID: 6, Role: domain.RoleMechanic}, 9, domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Менеджеру доступна любая задача
	_, err = svc.UpdateStatus(ctx, domain.Principal{ID: 1, Role: domain.RoleManager}, 9, domain.TaskStatusCompleted)
	assert.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeTasksRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), domain.Principal{ID: 1, Role: domain.RoleManager}, 9, domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
