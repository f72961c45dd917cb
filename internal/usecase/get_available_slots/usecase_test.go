package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

type fakeOrdersRepo struct {
	orders []*domain.Order
	err    error
}

func (f *fakeOrdersRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Order, error) {
	return f.orders, f.err
}

type fakeServicesRepo struct {
	services []domain.Service
	err      error
}

func (f *fakeServicesRepo) GetByIDs(_ context.Context, _ []int64) ([]domain.Service, error) {
	return f.services, f.err
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

func testSchedule() domain.Schedule {
	return domain.Schedule{
		OpenTime:               "09:00",
		CloseTime:              "17:00",
		SlotGranularityMinutes: 30,
	}
}

func newTestUseCase(orders *fakeOrdersRepo, services *fakeServicesRepo, now time.Time) *UseCase {
	uc := NewUseCase(orders, services, testSchedule(), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func order(start, end types.TimeString) *domain.Order {
	return &domain.Order{StartTime: start, EndTime: end}
}

func serviceWithDuration(minutes int) domain.Service {
	return domain.Service{
		ID:              1,
		Name:            "Oil change",
		Price:           decimal.NewFromInt(3000),
		DurationMinutes: minutes,
	}
}

func slotMap(slots []domain.Slot) map[types.TimeString]bool {
	m := make(map[types.TimeString]bool, len(slots))
	for _, s := range slots {
		m[s.StartTime] = s.Available
	}
	return m
}

func TestExecute_MarksOverlappingSlotsUnavailable(t *testing.T) {
	// Существующий заказ занимает 10:00-11:00, запрошена услуга на 30 минут
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	ordersRepo := &fakeOrdersRepo{orders: []*domain.Order{order("10:00", "11:00")}}
	servicesRepo := &fakeServicesRepo{services: []domain.Service{serviceWithDuration(30)}}
	uc := newTestUseCase(ordersRepo, servicesRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		Date:       date,
		ServiceIDs: []int64{1},
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
	// 16 слотов с 09:00 до 16:30 включительно
	require.Len(t, resp.Slots, 16)

	availability := slotMap(resp.Slots)
	assert.True(t, availability["09:00"])
	// 09:30-10:00 граничит с заказом, пересечения нет
	assert.True(t, availability["09:30"])
	assert.False(t, availability["10:00"])
	assert.False(t, availability["10:30"])
	// 11:00 начинается ровно в конце заказа
	assert.True(t, availability["11:00"])
	assert.True(t, availability["16:30"])
}

func TestExecute_LongVisitBlocksEarlierSlots(t *testing.T) {
	// Двухчасовой визит пересекается с заказом и из более ранних слотов
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	ordersRepo := &fakeOrdersRepo{orders: []*domain.Order{order("12:00", "13:00")}}
	servicesRepo := &fakeServicesRepo{services: []domain.Service{
		serviceWithDuration(90),
		serviceWithDuration(30),
	}}
	uc := newTestUseCase(ordersRepo, servicesRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		Date:       date,
		ServiceIDs: []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 120, resp.DurationMinutes)

	availability := slotMap(resp.Slots)
	// 10:00-12:00 граничит с заказом
	assert.True(t, availability["10:00"])
	// 10:30-12:30 пересекается
	assert.False(t, availability["10:30"])
	assert.False(t, availability["12:30"])
	// 13:00-15:00 начинается ровно в конце заказа
	assert.True(t, availability["13:00"])
}

func TestExecute_PastDateReturnsNoSlots(t *testing.T) {
	now := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	ordersRepo := &fakeOrdersRepo{}
	servicesRepo := &fakeServicesRepo{services: []domain.Service{serviceWithDuration(30)}}
	uc := newTestUseCase(ordersRepo, servicesRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		Date:       date,
		ServiceIDs: []int64{1},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodaySkipsElapsedSlots(t *testing.T) {
	// В 11:10 слоты до 11:30 уже прошли
	now := time.Date(2026, 9, 1, 11, 10, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	ordersRepo := &fakeOrdersRepo{}
	servicesRepo := &fakeServicesRepo{services: []domain.Service{serviceWithDuration(30)}}
	uc := newTestUseCase(ordersRepo, servicesRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		Date:       date,
		ServiceIDs: []int64{1},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[0].StartTime)
	assert.Len(t, resp.Slots, 11)
}

func TestExecute_RepeatedCallsReturnSameResult(t *testing.T) {
	// Просмотр слотов ничего не резервирует
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	ordersRepo := &fakeOrdersRepo{orders: []*domain.Order{order("10:00", "11:00")}}
	servicesRepo := &fakeServicesRepo{services: []domain.Service{serviceWithDuration(30)}}
	uc := newTestUseCase(ordersRepo, servicesRepo, now)

	req := &Request{ClientID: 1, Date: date, ServiceIDs: []int64{1}}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeOrdersRepo{}, &fakeServicesRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		Date:       time.Time{},
		ServiceIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1,
		Date:     time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ClientID:   1,
		Date:       time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		ServiceIDs: []int64{0},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
