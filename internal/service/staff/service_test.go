package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
)

type fakeEmployeesRepo struct {
	byID   map[int64]*domain.Employee
	nextID int64
}

func (f *fakeEmployeesRepo) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	f.nextID++
	employee.ID = f.nextID
	f.byID[employee.ID] = employee
	return employee, nil
}

func (f *fakeEmployeesRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := f.byID[id]
	if !ok {
		return nil, employeesRepo.ErrEmployeeNotFound
	}
	return employee, nil
}

func (f *fakeEmployeesRepo) List(_ context.Context) ([]*domain.Employee, error) {
	list := make([]*domain.Employee, 0, len(f.byID))
	for _, employee := range f.byID {
		list = append(list, employee)
	}
	return list, nil
}

func (f *fakeEmployeesRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := f.byID[employee.ID]; !ok {
		return employeesRepo.ErrEmployeeNotFound
	}
	f.byID[employee.ID] = employee
	return nil
}

func (f *fakeEmployeesRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return employeesRepo.ErrEmployeeNotFound
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeEmployeesRepo) {
	repo := &fakeEmployeesRepo{byID: map[int64]*domain.Employee{
		7: {ID: 7, Name: "Boris", Email: "boris@shop.ru", Phone: "+79990001122", Role: domain.RoleMechanic},
	}, nextID: 7}
	return NewService(repo, nopLogger{}), repo
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()
	manager := domain.Principal{ID: 1, Role: domain.RoleManager}

	created, err := svc.Create(context.Background(), manager, &domain.Employee{
		Name:  "Oleg",
		Email: "Oleg@Shop.RU",
		Phone: "+79993334455",
		Role:  domain.RoleMechanic,
	}, "secret123")
	require.NoError(t, err)
	assert.Equal(t, "oleg@shop.ru", created.Email)
	assert.NotEmpty(t, created.PasswordHash)
}

func TestCreate_ManagerOnly(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), domain.Principal{ID: 7, Role: domain.RoleMechanic}, &domain.Employee{
		Name:  "Oleg",
		Email: "oleg@shop.ru",
		Phone: "+79993334455",
		Role:  domain.RoleMechanic,
	}, "secret123")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_Access(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Сотрудник видит свою карточку
	employee, err := svc.GetByID(ctx, domain.Principal{ID: 7, Role: domain.RoleMechanic}, 7)
	require.NoError(t, err)
	assert.Equal(t, "Boris", employee.Name)

	// Менеджер видит любую
	_, err = svc.GetByID(ctx, domain.Principal{ID: 1, Role: domain.RoleManager}, 7)
	assert.NoError(t, err)

	// Чужая карточка механику недоступна
	_, err = svc.GetByID(ctx, domain.Principal{ID: 8, Role: domain.RoleMechanic}, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_ClientWithCollidingID(t *testing.T) {
	// Клиент с ID=7 не имеет отношения к сотруднику с ID=7:
	// нумерация клиентов и сотрудников независимая
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), domain.Principal{ID: 7, Role: domain.RoleClient}, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListUpdateDelete_ManagerOnly(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	manager := domain.Principal{ID: 1, Role: domain.RoleManager}
	mechanic := domain.Principal{ID: 7, Role: domain.RoleMechanic}

	_, err := svc.List(ctx, mechanic)
	assert.ErrorIs(t, err, ErrAccessDenied)

	list, err := svc.List(ctx, manager)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Update(ctx, mechanic, &domain.Employee{ID: 7, Name: "Boris", Email: "boris@shop.ru", Phone: "+79990001122", Role: domain.RoleMechanic})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(ctx, mechanic, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Delete(ctx, manager, 7))
	assert.Empty(t, repo.byID)
}
