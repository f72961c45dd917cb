package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	servicesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/services"
)

// UseCase use case для получения слотов записи на день
type UseCase struct {
	ordersRepo   OrdersRepository
	servicesRepo ServicesRepository
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ordersRepo OrdersRepository,
	servicesRepo ServicesRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		ordersRepo:   ordersRepo,
		servicesRepo: servicesRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: client=%d, date=%s, services=%v",
		req.ClientID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем выбранные услуги и считаем суммарную длительность визита
	services, err := uc.servicesRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	durationMinutes := domain.TotalDuration(services)

	// 3. Генерируем стартовые времена слотов на день
	timeSlots, err := generateTimeSlots(uc.schedule, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Получаем все заказы на эту дату
	orders, err := uc.ordersRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	// 5. Проставляем доступность каждому слоту
	slots := markAvailability(timeSlots, durationMinutes, orders)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, duration=%d",
		len(slots), req.Date.Format(domain.DateFormat), durationMinutes)

	return &Response{
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}
