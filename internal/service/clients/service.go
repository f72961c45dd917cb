package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	clientsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/clients"
)

// Service сервис работы с клиентами
// Клиент видит и меняет только свой профиль, менеджер - любой
type Service struct {
	clientsRepo ClientsRepository
	carsRepo    CarsRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientsRepo ClientsRepository, carsRepo CarsRepository, logger Logger) *Service {
	return &Service{
		clientsRepo: clientsRepo,
		carsRepo:    carsRepo,
		logger:      logger,
	}
}

// canAccess проверяет доступ к профилю клиента.
// ID клиентов и сотрудников нумеруются независимо, поэтому совпадение
// ID без роли client ничего не значит
func canAccess(principal domain.Principal, clientID int64) bool {
	if principal.IsManager() {
		return true
	}
	return principal.Role == domain.RoleClient && principal.ID == clientID
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, principal domain.Principal, id int64) (*domain.Client, error) {
	if !canAccess(principal, id) {
		s.logger.Warn("GetByID: access denied for id=%d to client id=%d", principal.ID, id)
		return nil, ErrAccessDenied
	}

	client, err := s.clientsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return client, nil
}

// ListCars получает автомобили клиента
func (s *Service) ListCars(ctx context.Context, principal domain.Principal, clientID int64) ([]*domain.Car, error) {
	if !canAccess(principal, clientID) {
		s.logger.Warn("ListCars: access denied for id=%d to client id=%d", principal.ID, clientID)
		return nil, ErrAccessDenied
	}

	cars, err := s.carsRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListCars: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListCars - repository error: %v", ErrInternal, err)
	}

	return cars, nil
}

// List получает всех клиентов, доступно только менеджеру
func (s *Service) List(ctx context.Context, principal domain.Principal) ([]*domain.Client, error) {
	if !principal.IsManager() {
		s.logger.Warn("List: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	clients, err := s.clientsRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return clients, nil
}

// Update обновляет контактные данные клиента
func (s *Service) Update(ctx context.Context, principal domain.Principal, client *domain.Client) (*domain.Client, error) {
	if !canAccess(principal, client.ID) {
		s.logger.Warn("Update: access denied for id=%d to client id=%d", principal.ID, client.ID)
		return nil, ErrAccessDenied
	}

	if client.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(client.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if client.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	client.Email = strings.ToLower(strings.TrimSpace(client.Email))

	if err := s.clientsRepo.Update(ctx, client); err != nil {
		switch {
		case errors.Is(err, clientsRepo.ErrClientNotFound):
			s.logger.Warn("Update: client id=%d not found", client.ID)
			return nil, ErrClientNotFound
		case errors.Is(err, clientsRepo.ErrEmailTaken):
			s.logger.Warn("Update: email=%s already registered", client.Email)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("Update: repository error for client id=%d: %v", client.ID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: client id=%d updated by id=%d", client.ID, principal.ID)

	return s.clientsRepo.GetByID(ctx, client.ID)
}

// Delete удаляет клиента, доступно только менеджеру
func (s *Service) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if !principal.IsManager() {
		s.logger.Warn("Delete: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return ErrAccessDenied
	}

	if err := s.clientsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: manager id=%d deleted client id=%d", principal.ID, id)

	return nil
}
