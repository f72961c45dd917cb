package reports

import (
	"context"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// Service сервис сводных отчетов менеджера
type Service struct {
	reportsRepo ReportsRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(reportsRepo ReportsRepository, logger Logger) *Service {
	return &Service{reportsRepo: reportsRepo, logger: logger}
}

// Summary собирает сводный отчет за период, доступно только менеджеру
func (s *Service) Summary(ctx context.Context, principal domain.Principal, filter domain.ReportFilter) (*domain.ReportSummary, error) {
	if !principal.IsManager() {
		s.logger.Warn("Summary: access denied for id=%d, role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		s.logger.Warn("Summary: period start is after period end")
		return nil, ErrInvalidPeriod
	}

	totalOrders, totalRevenue, err := s.reportsRepo.Totals(ctx, filter)
	if err != nil {
		s.logger.Error("Summary: failed to get totals: %v", err)
		return nil, fmt.Errorf("%w: Summary - totals: %v", ErrInternal, err)
	}

	byService, err := s.reportsRepo.RevenueByService(ctx, filter)
	if err != nil {
		s.logger.Error("Summary: failed to get revenue by service: %v", err)
		return nil, fmt.Errorf("%w: Summary - revenue by service: %v", ErrInternal, err)
	}

	byCarModel, err := s.reportsRepo.OrdersByCarModel(ctx, filter)
	if err != nil {
		s.logger.Error("Summary: failed to get orders by car model: %v", err)
		return nil, fmt.Errorf("%w: Summary - orders by car model: %v", ErrInternal, err)
	}

	byEmployee, err := s.reportsRepo.TaskStatsByEmployee(ctx, filter)
	if err != nil {
		s.logger.Error("Summary: failed to get task stats: %v", err)
		return nil, fmt.Errorf("%w: Summary - task stats: %v", ErrInternal, err)
	}

	s.logger.Info("Summary: built report for manager id=%d, orders=%d", principal.ID, totalOrders)

	return &domain.ReportSummary{
		From:         filter.From,
		To:           filter.To,
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
		ByService:    byService,
		ByCarModel:   byCarModel,
		ByEmployee:   byEmployee,
	}, nil
}
