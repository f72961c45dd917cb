package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
)

// Минимальная длина пароля сотрудника
const minPasswordLength = 8

// Service сервис управления сотрудниками, все операции доступны только менеджеру
type Service struct {
	employeesRepo EmployeesRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeesRepo EmployeesRepository, logger Logger) *Service {
	return &Service{employeesRepo: employeesRepo, logger: logger}
}

// Create создает нового сотрудника с хешированием пароля
func (s *Service) Create(ctx context.Context, principal domain.Principal, employee *domain.Employee, password string) (*domain.Employee, error) {
	if !principal.IsManager() {
		s.logger.Warn("Create: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}
	employee.PasswordHash = string(hash)
	employee.Email = strings.ToLower(strings.TrimSpace(employee.Email))

	created, err := s.employeesRepo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, employeesRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already registered", employee.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: manager id=%d created employee id=%d, role=%s", principal.ID, created.ID, created.Role)

	return created, nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, principal domain.Principal, id int64) (*domain.Employee, error) {
	// Сотрудник может смотреть только свою карточку, менеджер - любую.
	// Клиенту с совпадающим ID карточка недоступна: нумерация независимая
	if !principal.IsManager() && (!principal.IsEmployee() || principal.ID != id) {
		s.logger.Warn("GetByID: access denied for id=%d, role=%s to employee id=%d", principal.ID, principal.Role, id)
		return nil, ErrAccessDenied
	}

	employee, err := s.employeesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeesRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetByID: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetByID: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return employee, nil
}

// List получает всех сотрудников
func (s *Service) List(ctx context.Context, principal domain.Principal) ([]*domain.Employee, error) {
	if !principal.IsManager() {
		s.logger.Warn("List: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	employees, err := s.employeesRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return employees, nil
}

// Update обновляет данные сотрудника
func (s *Service) Update(ctx context.Context, principal domain.Principal, employee *domain.Employee) (*domain.Employee, error) {
	if !principal.IsManager() {
		s.logger.Warn("Update: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}
	employee.Email = strings.ToLower(strings.TrimSpace(employee.Email))

	if err := s.employeesRepo.Update(ctx, employee); err != nil {
		switch {
		case errors.Is(err, employeesRepo.ErrEmployeeNotFound):
			s.logger.Warn("Update: employee id=%d not found", employee.ID)
			return nil, ErrEmployeeNotFound
		case errors.Is(err, employeesRepo.ErrEmailTaken):
			s.logger.Warn("Update: email=%s already registered", employee.Email)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("Update: repository error for employee id=%d: %v", employee.ID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: manager id=%d updated employee id=%d", principal.ID, employee.ID)

	return s.employeesRepo.GetByID(ctx, employee.ID)
}

// Delete удаляет сотрудника
func (s *Service) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if !principal.IsManager() {
		s.logger.Warn("Delete: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return ErrAccessDenied
	}

	if err := s.employeesRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employeesRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Delete: employee id=%d not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Delete: repository error for employee id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: manager id=%d deleted employee id=%d", principal.ID, id)

	return nil
}

// validateEmployee проверяет поля сотрудника
func validateEmployee(employee *domain.Employee) error {
	if employee.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(employee.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if employee.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if !employee.Role.EmployeeRole() {
		return fmt.Errorf("%w: role must be mechanic or manager", ErrInvalidInput)
	}
	return nil
}
