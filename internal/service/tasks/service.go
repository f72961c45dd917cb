package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	tasksRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/tasks"
)

// Service сервис задач механиков
type Service struct {
	tasksRepo TasksRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса задач
func NewService(tasksRepo TasksRepository, logger Logger) *Service {
	return &Service{tasksRepo: tasksRepo, logger: logger}
}

// ListByEmployee получает задачи сотрудника с данными заказов
// Механик видит только свои задачи, менеджер - задачи любого сотрудника
func (s *Service) ListByEmployee(ctx context.Context, principal domain.Principal, employeeID int64) ([]*domain.TaskDetails, error) {
	if !principal.IsManager() && principal.ID != employeeID {
		s.logger.Warn("ListByEmployee: access denied for id=%d to employee id=%d", principal.ID, employeeID)
		return nil, ErrAccessDenied
	}
	if !principal.IsEmployee() {
		s.logger.Warn("ListByEmployee: access denied for client id=%d", principal.ID)
		return nil, ErrAccessDenied
	}

	list, err := s.tasksRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("ListByEmployee: repository error for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: ListByEmployee - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// UpdateStatus переводит задачу в новый статус
// Статус меняет закрепленный механик или менеджер
func (s *Service) UpdateStatus(ctx context.Context, principal domain.Principal, taskID int64, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for task id=%d", status, taskID)
		return nil, ErrInvalidStatus
	}

	task, err := s.tasksRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, tasksRepo.ErrTaskNotFound) {
			s.logger.Warn("UpdateStatus: task id=%d not found", taskID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%d: %v", taskID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !principal.IsManager() && task.EmployeeID != principal.ID {
		s.logger.Warn("UpdateStatus: access denied for id=%d to task id=%d", principal.ID, taskID)
		return nil, ErrAccessDenied
	}

	if err := s.tasksRepo.UpdateStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, tasksRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%d: %v", taskID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: task id=%d moved to status=%s by id=%d", taskID, status, principal.ID)

	task.Status = status
	return task, nil
}
