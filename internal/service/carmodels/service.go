package carmodels

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	carmodelsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/carmodels"
)

// Service сервис справочника моделей автомобилей
// Чтение публично, изменения доступны только менеджеру
type Service struct {
	carModelsRepo CarModelsRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса моделей
func NewService(carModelsRepo CarModelsRepository, logger Logger) *Service {
	return &Service{carModelsRepo: carModelsRepo, logger: logger}
}

// List получает все модели справочника
func (s *Service) List(ctx context.Context) ([]*domain.CarModel, error) {
	models, err := s.carModelsRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models, nil
}

// GetByID получает модель по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.CarModel, error) {
	model, err := s.carModelsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carmodelsRepo.ErrCarModelNotFound) {
			s.logger.Warn("GetByID: car model id=%d not found", id)
			return nil, ErrCarModelNotFound
		}
		s.logger.Error("GetByID: repository error for model id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return model, nil
}

// Create создает новую модель, доступно только менеджеру
func (s *Service) Create(ctx context.Context, principal domain.Principal, model *domain.CarModel) (*domain.CarModel, error) {
	if !principal.IsManager() {
		s.logger.Warn("Create: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if err := validateModel(model); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.carModelsRepo.Create(ctx, model)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: manager id=%d created car model id=%d", principal.ID, created.ID)

	return created, nil
}

// Update обновляет модель, доступно только менеджеру
func (s *Service) Update(ctx context.Context, principal domain.Principal, model *domain.CarModel) (*domain.CarModel, error) {
	if !principal.IsManager() {
		s.logger.Warn("Update: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if err := validateModel(model); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.carModelsRepo.Update(ctx, model); err != nil {
		if errors.Is(err, carmodelsRepo.ErrCarModelNotFound) {
			s.logger.Warn("Update: car model id=%d not found", model.ID)
			return nil, ErrCarModelNotFound
		}
		s.logger.Error("Update: repository error for model id=%d: %v", model.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: manager id=%d updated car model id=%d", principal.ID, model.ID)

	return model, nil
}

// Delete удаляет модель, доступно только менеджеру
func (s *Service) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if !principal.IsManager() {
		s.logger.Warn("Delete: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return ErrAccessDenied
	}

	if err := s.carModelsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, carmodelsRepo.ErrCarModelNotFound) {
			s.logger.Warn("Delete: car model id=%d not found", id)
			return ErrCarModelNotFound
		}
		s.logger.Error("Delete: repository error for model id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: manager id=%d deleted car model id=%d", principal.ID, id)

	return nil
}

// validateModel проверяет поля модели
func validateModel(model *domain.CarModel) error {
	if model.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if model.ModelName == "" {
		return fmt.Errorf("%w: model name is required", ErrInvalidInput)
	}
	return nil
}
