package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	carmodelsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/carmodels"
	carsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/cars"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
	servicesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/services"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// UseCase use case создания записи на обслуживание
//
// Проверка пересечения и вся запись выполняются в одной сериализуемой
// транзакции: заказы дня блокируются, поэтому два конкурирующих
// бронирования на пересекающиеся интервалы не могут пройти оба
type UseCase struct {
	txManager     TxManager
	ordersRepo    OrdersRepository
	servicesRepo  ServicesRepository
	carsRepo      CarsRepository
	carModelsRepo CarModelsRepository
	employeesRepo EmployeesRepository
	tasksRepo     TasksRepository
	schedule      domain.Schedule
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	txManager TxManager,
	ordersRepo OrdersRepository,
	servicesRepo ServicesRepository,
	carsRepo CarsRepository,
	carModelsRepo CarModelsRepository,
	employeesRepo EmployeesRepository,
	tasksRepo TasksRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		txManager:     txManager,
		ordersRepo:    ordersRepo,
		servicesRepo:  servicesRepo,
		carsRepo:      carsRepo,
		carModelsRepo: carModelsRepo,
		employeesRepo: employeesRepo,
		tasksRepo:     tasksRepo,
		schedule:      schedule,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: client=%d, date=%s, start=%s, services=%v",
		req.ClientID, req.AppointmentDate.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата и время записи не должны быть в прошлом
	if err := validateDateTime(req.AppointmentDate, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateOrder: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услуги и считаем интервал визита
	services, err := uc.servicesRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateOrder: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateOrder: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	durationMinutes := domain.TotalDuration(services)

	endTime, err := req.StartTime.AddMinutes(durationMinutes)
	if err != nil {
		// Конец визита выходит за пределы суток
		uc.logger.Warn("CreateOrder: interval exceeds day bounds: start=%s, duration=%d",
			req.StartTime, durationMinutes)
		return nil, ErrOutsideWorkingHours
	}

	// 4. Интервал должен помещаться в рабочие часы
	if err := validateWorkingHours(req.StartTime, endTime, uc.schedule); err != nil {
		uc.logger.Warn("CreateOrder: interval outside working hours: %s-%s", req.StartTime, endTime)
		return nil, err
	}

	// 5. Проверяем автомобиль до открытия транзакции
	if err := uc.checkCar(ctx, req); err != nil {
		return nil, err
	}

	// 6. Проверка пересечения и запись в одной сериализуемой транзакции
	var order *domain.Order
	var task *domain.Task

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayOrders, err := uc.ordersRepo.ListByDate(txCtx, req.AppointmentDate)
		if err != nil {
			return fmt.Errorf("%w: failed to get day orders: %v", ErrInternal, err)
		}

		if overlapsExisting(req.StartTime, endTime, dayOrders) {
			return ErrSlotNotAvailable
		}

		carID, err := uc.resolveCar(txCtx, req)
		if err != nil {
			return err
		}

		order = &domain.Order{
			ClientID:        req.ClientID,
			CarID:           carID,
			AppointmentDate: req.AppointmentDate,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			Services:        services,
		}

		order, err = uc.ordersRepo.Create(txCtx, order)
		if err != nil {
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		if err := uc.ordersRepo.AttachServices(txCtx, order.ID, req.ServiceIDs); err != nil {
			return fmt.Errorf("%w: failed to attach services: %v", ErrInternal, err)
		}

		mechanic, err := uc.employeesRepo.LeastLoadedMechanic(txCtx)
		if err != nil {
			if errors.Is(err, employeesRepo.ErrEmployeeNotFound) {
				return ErrNoMechanicAvailable
			}
			return fmt.Errorf("%w: failed to pick mechanic: %v", ErrInternal, err)
		}

		task = &domain.Task{
			OrderID:    order.ID,
			EmployeeID: mechanic.ID,
			Status:     domain.TaskStatusPending,
		}

		task, err = uc.tasksRepo.Create(txCtx, task)
		if err != nil {
			return fmt.Errorf("%w: failed to create task: %v", ErrInternal, err)
		}

		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrSlotNotAvailable):
			uc.logger.Warn("CreateOrder: slot %s-%s on %s is taken",
				req.StartTime, endTime, req.AppointmentDate.Format(domain.DateFormat))
		case errors.Is(txErr, ErrNoMechanicAvailable):
			uc.logger.Warn("CreateOrder: no mechanic to assign")
		case errors.Is(txErr, ErrCarModelNotFound), errors.Is(txErr, ErrCarNotFound):
			uc.logger.Warn("CreateOrder: car resolution failed: %v", txErr)
		default:
			uc.logger.Error("CreateOrder: transaction failed: %v", txErr)
			if !errors.Is(txErr, ErrInternal) {
				txErr = fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
			}
		}
		return nil, txErr
	}

	uc.logger.Info("CreateOrder: created order id=%d (%s-%s), task id=%d for employee=%d",
		order.ID, order.StartTime, order.EndTime, task.ID, task.EmployeeID)

	return &Response{Order: order, Task: task}, nil
}

// checkCar проверяет существование и принадлежность автомобиля до транзакции
func (uc *UseCase) checkCar(ctx context.Context, req *Request) error {
	if req.CarID != nil {
		car, err := uc.carsRepo.GetByID(ctx, *req.CarID)
		if err != nil {
			if errors.Is(err, carsRepo.ErrCarNotFound) {
				uc.logger.Warn("CreateOrder: car id=%d not found", *req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("CreateOrder: failed to get car id=%d: %v", *req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
		}
		// Чужой автомобиль неотличим от несуществующего
		if car.ClientID != req.ClientID {
			uc.logger.Warn("CreateOrder: car id=%d belongs to another client", *req.CarID)
			return ErrCarNotFound
		}
		return nil
	}

	if _, err := uc.carModelsRepo.GetByID(ctx, req.NewCar.CarModelID); err != nil {
		if errors.Is(err, carmodelsRepo.ErrCarModelNotFound) {
			uc.logger.Warn("CreateOrder: car model id=%d not found", req.NewCar.CarModelID)
			return ErrCarModelNotFound
		}
		uc.logger.Error("CreateOrder: failed to get car model id=%d: %v", req.NewCar.CarModelID, err)
		return fmt.Errorf("%w: failed to get car model: %v", ErrInternal, err)
	}

	return nil
}

// resolveCar возвращает ID автомобиля заказа, создавая новый при необходимости
func (uc *UseCase) resolveCar(ctx context.Context, req *Request) (int64, error) {
	if req.CarID != nil {
		return *req.CarID, nil
	}

	car := &domain.Car{
		ClientID:     req.ClientID,
		CarModelID:   req.NewCar.CarModelID,
		Year:         req.NewCar.Year,
		VIN:          req.NewCar.VIN,
		LicensePlate: req.NewCar.LicensePlate,
	}

	car, err := uc.carsRepo.Create(ctx, car)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create car: %v", ErrInternal, err)
	}

	return car.ID, nil
}

// overlapsExisting проверяет пересечение интервала с заказами дня
// Интервалы полуоткрытые, граничащие визиты пересечением не считаются
func overlapsExisting(start, end types.TimeString, orders []*domain.Order) bool {
	for _, order := range orders {
		if order.StartTime.IsBefore(end) && order.EndTime.IsAfter(start) {
			return true
		}
	}
	return false
}
