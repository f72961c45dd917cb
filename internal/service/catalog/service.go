package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	servicesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/services"
)

// Service сервис каталога услуг автосервиса
// Чтение каталога публично, изменения доступны только менеджеру
type Service struct {
	servicesRepo ServicesRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(servicesRepo ServicesRepository, logger Logger) *Service {
	return &Service{servicesRepo: servicesRepo, logger: logger}
}

// List получает все услуги каталога
func (s *Service) List(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.servicesRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.servicesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return service, nil
}

// Create создает новую услугу, доступно только менеджеру
func (s *Service) Create(ctx context.Context, principal domain.Principal, service *domain.Service) (*domain.Service, error) {
	if !principal.IsManager() {
		s.logger.Warn("Create: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if err := validateService(service); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.servicesRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: manager id=%d created service id=%d", principal.ID, created.ID)

	return created, nil
}

// Update частично обновляет услугу, доступно только менеджеру
func (s *Service) Update(ctx context.Context, principal domain.Principal, id int64, update domain.ServiceUpdate) (*domain.Service, error) {
	if !principal.IsManager() {
		s.logger.Warn("Update: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if err := validateUpdate(update); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.servicesRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: manager id=%d updated service id=%d", principal.ID, id)

	return s.GetByID(ctx, id)
}

// Delete удаляет услугу, доступно только менеджеру
func (s *Service) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if !principal.IsManager() {
		s.logger.Warn("Delete: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return ErrAccessDenied
	}

	if err := s.servicesRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: manager id=%d deleted service id=%d", principal.ID, id)

	return nil
}

// validateService проверяет поля новой услуги
func validateService(service *domain.Service) error {
	if service.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if service.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}

// validateUpdate проверяет переданные поля частичного обновления
func validateUpdate(update domain.ServiceUpdate) error {
	if update.Name != nil && *update.Name == "" {
		return fmt.Errorf("%w: service name must not be empty", ErrInvalidInput)
	}
	if update.Price != nil && update.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if update.DurationMinutes != nil && *update.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
