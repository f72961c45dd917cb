package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	clientsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/clients"
)

type fakeClientsRepo struct {
	byID    map[int64]*domain.Client
	updated *domain.Client
	deleted int64
}

func (f *fakeClientsRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	client, ok := f.byID[id]
	if !ok {
		return nil, clientsRepo.ErrClientNotFound
	}
	return client, nil
}

func (f *fakeClientsRepo) List(_ context.Context) ([]*domain.Client, error) {
	list := make([]*domain.Client, 0, len(f.byID))
	for _, client := range f.byID {
		list = append(list, client)
	}
	return list, nil
}

func (f *fakeClientsRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := f.byID[client.ID]; !ok {
		return clientsRepo.ErrClientNotFound
	}
	f.updated = client
	f.byID[client.ID] = client
	return nil
}

func (f *fakeClientsRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return clientsRepo.ErrClientNotFound
	}
	f.deleted = id
	delete(f.byID, id)
	return nil
}

type fakeCarsRepo struct {
	cars []*domain.Car
}

func (f *fakeCarsRepo) ListByClient(_ context.Context, _ int64) ([]*domain.Car, error) {
	return f.cars, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeClientsRepo, *fakeCarsRepo) {
	clients := &fakeClientsRepo{byID: map[int64]*domain.Client{
		5: {ID: 5, Name: "Ivan", Email: "ivan@example.com", Phone: "+79991234567"},
	}}
	cars := &fakeCarsRepo{cars: []*domain.Car{{ID: 10, ClientID: 5}}}
	return NewService(clients, cars, nopLogger{}), clients, cars
}

func TestGetByID_Access(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Владелец видит свой профиль
	client, err := svc.GetByID(ctx, domain.Principal{ID: 5, Role: domain.RoleClient}, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", client.Name)

	// Менеджер видит любой профиль
	_, err = svc.GetByID(ctx, domain.Principal{ID: 1, Role: domain.RoleManager}, 5)
	assert.NoError(t, err)

	// Чужой профиль клиенту недоступен
	_, err = svc.GetByID(ctx, domain.Principal{ID: 6, Role: domain.RoleClient}, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_MechanicWithCollidingID(t *testing.T) {
	// ID клиентов и сотрудников нумеруются независимо: механик с ID=5
	// не имеет отношения к клиенту с ID=5
	svc, _, _ := newTestService()

	_, err := svc.GetByID(context.Background(), domain.Principal{ID: 5, Role: domain.RoleMechanic}, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListCars_Access(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cars, err := svc.ListCars(ctx, domain.Principal{ID: 5, Role: domain.RoleClient}, 5)
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	_, err = svc.ListCars(ctx, domain.Principal{ID: 5, Role: domain.RoleMechanic}, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	updated, err := svc.Update(ctx, domain.Principal{ID: 5, Role: domain.RoleClient}, &domain.Client{
		ID:    5,
		Name:  "Ivan Petrov",
		Email: "ivan@example.com",
		Phone: "+79991234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", updated.Name)
	require.NotNil(t, repo.updated)
}

func TestUpdate_MechanicWithCollidingID(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Update(context.Background(), domain.Principal{ID: 5, Role: domain.RoleMechanic}, &domain.Client{
		ID:    5,
		Name:  "Hacked",
		Email: "ivan@example.com",
		Phone: "+79991234567",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdate_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	owner := domain.Principal{ID: 5, Role: domain.RoleClient}

	_, err := svc.Update(context.Background(), owner, &domain.Client{ID: 5, Email: "ivan@example.com", Phone: "+7999"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), owner, &domain.Client{ID: 5, Name: "Ivan", Email: "bad", Phone: "+7999"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAndDelete_ManagerOnly(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	manager := domain.Principal{ID: 1, Role: domain.RoleManager}
	client := domain.Principal{ID: 5, Role: domain.RoleClient}

	_, err := svc.List(ctx, client)
	assert.ErrorIs(t, err, ErrAccessDenied)

	list, err := svc.List(ctx, manager)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = svc.Delete(ctx, client, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Delete(ctx, manager, 5))
	assert.Equal(t, int64(5), repo.deleted)
}
