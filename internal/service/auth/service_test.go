package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	clientsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/clients"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
)

type fakeClientsRepo struct {
	byEmail map[string]*domain.Client
	nextID  int64
}

func (f *fakeClientsRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if _, exists := f.byEmail[client.Email]; exists {
		return nil, clientsRepo.ErrEmailTaken
	}
	f.nextID++
	client.ID = f.nextID
	f.byEmail[client.Email] = client
	return client, nil
}

func (f *fakeClientsRepo) GetByEmail(_ context.Context, email string) (*domain.Client, error) {
	client, ok := f.byEmail[email]
	if !ok {
		return nil, clientsRepo.ErrClientNotFound
	}
	return client, nil
}

type fakeEmployeesRepo struct {
	byEmail map[string]*domain.Employee
}

func (f *fakeEmployeesRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	employee, ok := f.byEmail[email]
	if !ok {
		return nil, employeesRepo.ErrEmployeeNotFound
	}
	return employee, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeClientsRepo, *fakeEmployeesRepo) {
	clients := &fakeClientsRepo{byEmail: make(map[string]*domain.Client)}
	employees := &fakeEmployeesRepo{byEmail: make(map[string]*domain.Employee)}
	svc := NewService(clients, employees, "test-secret", 24*time.Hour, nopLogger{})
	return svc, clients, employees
}

func TestRegisterClient_IssuesValidToken(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.RegisterClient(ctx, "Ivan", "Ivan@Example.COM", "+79991234567", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, domain.RoleClient, result.Principal.Role)
	assert.Equal(t, "Ivan", result.Name)

	principal, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Principal, principal)
}

func TestRegisterClient_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, "Ivan", "ivan@example.com", "+79991234567", "secret123")
	require.NoError(t, err)

	_, err = svc.RegisterClient(ctx, "Petr", "ivan@example.com", "+79997654321", "secret456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterClient_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, "", "ivan@example.com", "+79991234567", "secret123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterClient(ctx, "Ivan", "not-an-email", "+79991234567", "secret123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterClient(ctx, "Ivan", "ivan@example.com", "+79991234567", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_Client(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, "Ivan", "ivan@example.com", "+79991234567", "secret123")
	require.NoError(t, err)

	result, err := svc.Login(ctx, " Ivan@Example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, result.Principal.Role)

	_, err = svc.Login(ctx, "ivan@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "unknown@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmployeeTakesPrecedence(t *testing.T) {
	svc, _, employees := newTestService()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("mechanic-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	employees.byEmail["boris@shop.ru"] = &domain.Employee{
		ID:           7,
		Name:         "Boris",
		Email:        "boris@shop.ru",
		PasswordHash: string(hash),
		Role:         domain.RoleMechanic,
	}

	result, err := svc.Login(ctx, "boris@shop.ru", "mechanic-pass")
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{ID: 7, Role: domain.RoleMechanic}, result.Principal)

	principal, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMechanic, principal.Role)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Токен, подписанный другим секретом
	other := NewService(
		&fakeClientsRepo{byEmail: make(map[string]*domain.Client)},
		&fakeEmployeesRepo{byEmail: make(map[string]*domain.Employee)},
		"other-secret", 24*time.Hour, nopLogger{},
	)
	result, err := other.RegisterClient(context.Background(), "Ivan", "ivan@example.com", "+79991234567", "secret123")
	require.NoError(t, err)

	_, err = svc.ParseToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
