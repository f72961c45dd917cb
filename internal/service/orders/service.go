package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	ordersRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/orders"
)

// Service сервис чтения и администрирования заказов
type Service struct {
	ordersRepo OrdersRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(ordersRepo OrdersRepository, logger Logger) *Service {
	return &Service{ordersRepo: ordersRepo, logger: logger}
}

// GetDetails получает заказ с данными клиента и автомобиля
// Клиент видит только свои заказы, сотрудники - любые
func (s *Service) GetDetails(ctx context.Context, principal domain.Principal, id int64) (*domain.OrderDetails, error) {
	details, err := s.ordersRepo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, ordersRepo.ErrOrderNotFound) {
			s.logger.Warn("GetDetails: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetDetails: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	if !principal.IsEmployee() && details.ClientID != principal.ID {
		s.logger.Warn("GetDetails: access denied for id=%d to order id=%d", principal.ID, id)
		return nil, ErrAccessDenied
	}

	return details, nil
}

// ListForPrincipal получает заказы, видимые пользователю:
// клиенту - его собственные, механику - закрепленные за ним, менеджеру - все
func (s *Service) ListForPrincipal(ctx context.Context, principal domain.Principal, filter domain.OrdersFilter) ([]*domain.OrderDetails, error) {
	switch principal.Role {
	case domain.RoleClient:
		filter.ClientID = &principal.ID
		filter.EmployeeID = nil
	case domain.RoleMechanic:
		filter.EmployeeID = &principal.ID
		filter.ClientID = nil
	case domain.RoleManager:
		// Менеджер видит все, фильтр остается как передан
	default:
		return nil, ErrAccessDenied
	}

	list, err := s.ordersRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForPrincipal: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForPrincipal - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// Delete удаляет заказ, доступно только менеджеру
func (s *Service) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if !principal.IsManager() {
		s.logger.Warn("Delete: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return ErrAccessDenied
	}

	if err := s.ordersRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ordersRepo.ErrOrderNotFound) {
			s.logger.Warn("Delete: order id=%d not found", id)
			return ErrOrderNotFound
		}
		s.logger.Error("Delete: repository error for order id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: manager id=%d deleted order id=%d", principal.ID, id)

	return nil
}
