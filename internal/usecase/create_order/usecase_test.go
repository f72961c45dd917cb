package create_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/ptr"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// inlineTxManager выполняет fn без реальной транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// rollbackTxManager отмечает, завершилась ли fn ошибкой,
// то есть откатилась бы реальная транзакция
type rollbackTxManager struct {
	rolledBack bool
}

func (m *rollbackTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.rolledBack = true
		return err
	}
	return nil
}

type fakeOrdersRepo struct {
	dayOrders   []*domain.Order
	created     *domain.Order
	attachedIDs []int64
	nextID      int64
}

func (f *fakeOrdersRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Order, error) {
	return f.dayOrders, nil
}

func (f *fakeOrdersRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	f.created = order
	return order, nil
}

func (f *fakeOrdersRepo) AttachServices(_ context.Context, _ int64, serviceIDs []int64) error {
	f.attachedIDs = serviceIDs
	return nil
}

type fakeServicesRepo struct {
	services []domain.Service
}

func (f *fakeServicesRepo) GetByIDs(_ context.Context, _ []int64) ([]domain.Service, error) {
	return f.services, nil
}

type fakeCarsRepo struct {
	car     *domain.Car
	err     error
	created *domain.Car
}

func (f *fakeCarsRepo) GetByID(_ context.Context, _ int64) (*domain.Car, error) {
	return f.car, f.err
}

func (f *fakeCarsRepo) Create(_ context.Context, car *domain.Car) (*domain.Car, error) {
	car.ID = 77
	f.created = car
	return car, nil
}

type fakeCarModelsRepo struct {
	model *domain.CarModel
	err   error
}

func (f *fakeCarModelsRepo) GetByID(_ context.Context, _ int64) (*domain.CarModel, error) {
	return f.model, f.err
}

type fakeEmployeesRepo struct {
	mechanic *domain.Employee
	err      error
}

func (f *fakeEmployeesRepo) LeastLoadedMechanic(_ context.Context) (*domain.Employee, error) {
	return f.mechanic, f.err
}

type fakeTasksRepo struct {
	created *domain.Task
	err     error
}

func (f *fakeTasksRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	task.ID = 500
	task.CreatedAt = time.Now()
	f.created = task
	return task, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc        *UseCase
	txManager *inlineTxManager
	orders    *fakeOrdersRepo
	cars      *fakeCarsRepo
	tasks     *fakeTasksRepo
	employees *fakeEmployeesRepo
}

func newFixture(now time.Time) *fixture {
	txManager := &inlineTxManager{}
	orders := &fakeOrdersRepo{}
	services := &fakeServicesRepo{services: []domain.Service{
		{ID: 1, Name: "Oil change", Price: decimal.NewFromInt(3000), DurationMinutes: 60},
	}}
	cars := &fakeCarsRepo{car: &domain.Car{ID: 10, ClientID: 1}}
	carModels := &fakeCarModelsRepo{model: &domain.CarModel{ID: 3, Brand: "Skoda", ModelName: "Octavia"}}
	employees := &fakeEmployeesRepo{mechanic: &domain.Employee{ID: 42, Role: domain.RoleMechanic}}
	tasks := &fakeTasksRepo{}

	schedule := domain.Schedule{
		OpenTime:               "09:00",
		CloseTime:              "17:00",
		SlotGranularityMinutes: 30,
	}

	uc := NewUseCase(txManager, orders, services, cars, carModels, employees, tasks, schedule, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	return &fixture{
		uc:        uc,
		txManager: txManager,
		orders:    orders,
		cars:      cars,
		tasks:     tasks,
		employees: employees,
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:        1,
		AppointmentDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		ServiceIDs:      []int64{1},
		CarID:           ptr.Ptr[int64](10),
	}
}

func TestExecute_CreatesOrderAndTask(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Order)
	assert.Equal(t, types.TimeString("10:00"), resp.Order.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Order.EndTime)
	assert.Equal(t, int64(10), resp.Order.CarID)
	assert.Equal(t, []int64{1}, f.orders.attachedIDs)

	require.NotNil(t, resp.Task)
	assert.Equal(t, resp.Order.ID, resp.Task.OrderID)
	assert.Equal(t, int64(42), resp.Task.EmployeeID)
	assert.Equal(t, domain.TaskStatusPending, resp.Task.Status)

	// Проверка пересечения и запись выполняются в одной транзакции
	assert.Equal(t, 1, f.txManager.calls)
}

func TestExecute_RegistersNewCar(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	req := validRequest()
	req.CarID = nil
	req.NewCar = &NewCar{
		CarModelID:   3,
		Year:         2020,
		VIN:          "TMBJJ7NE5L0123456",
		LicensePlate: "A123BC77",
	}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.cars.created)
	assert.Equal(t, int64(1), f.cars.created.ClientID)
	assert.Equal(t, f.cars.created.ID, resp.Order.CarID)
}

func TestExecute_OverlappingSlotRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.orders.dayOrders = []*domain.Order{
		{StartTime: "10:30", EndTime: "11:30"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.orders.created)
}

func TestExecute_AdjacentOrderAccepted(t *testing.T) {
	// Заказ, заканчивающийся ровно в начале нового, не мешает
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.orders.dayOrders = []*domain.Order{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "11:00", EndTime: "12:00"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DateInPast(t *testing.T) {
	now := time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_StartTimeElapsedToday(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	f := newFixture(now)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start types.TimeString
	}{
		{"before opening", "08:30"},
		{"ends after closing", "16:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now)
			req := validRequest()
			req.StartTime = tt.start

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideWorkingHours)
		})
	}
}

func TestExecute_VisitEndingAtClosingAccepted(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	req := validRequest()
	req.StartTime = "16:00"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("17:00"), resp.Order.EndTime)
}

func TestExecute_NoMechanicAvailable(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.employees.mechanic = nil
	f.employees.err = employeesRepo.ErrEmployeeNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoMechanicAvailable)
}

func TestExecute_TaskFailureRollsBackBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)

	txMgr := &rollbackTxManager{}
	f.uc.txManager = txMgr
	f.tasks.err = errors.New("insert failed")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)

	// Заказ без задачи не должен пережить транзакцию
	assert.True(t, txMgr.rolledBack)
	assert.Nil(t, f.tasks.created)
}

func TestExecute_ForeignCarRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.cars.car = &domain.Car{ID: 10, ClientID: 999}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestExecute_CarXorValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	f := newFixture(now)
	req := validRequest()
	req.CarID = nil

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f = newFixture(now)
	req = validRequest()
	req.NewCar = &NewCar{CarModelID: 3, Year: 2020, VIN: "TMBJJ7NE5L0123456", LicensePlate: "A123BC77"}

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
