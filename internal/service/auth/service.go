package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	clientsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/clients"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
)

// Минимальная длина пароля при регистрации
const minPasswordLength = 8

// Service сервис аутентификации клиентов и сотрудников
type Service struct {
	clientsRepo   ClientsRepository
	employeesRepo EmployeesRepository
	jwtSecret     []byte
	tokenTTL      time.Duration
	logger        Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	clientsRepo ClientsRepository,
	employeesRepo EmployeesRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		clientsRepo:   clientsRepo,
		employeesRepo: employeesRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

// LoginResult результат успешного входа
type LoginResult struct {
	Token     string
	Principal domain.Principal
	Name      string
}

// Login проверяет пару email/пароль и выпускает токен доступа.
// Сначала ищет сотрудника, затем клиента; общая ошибка не раскрывает,
// какая часть пары неверна
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	employee, err := s.employeesRepo.GetByEmail(ctx, email)
	if err == nil {
		return s.finishLogin(employee.PasswordHash, password, domain.Principal{
			ID:   employee.ID,
			Role: employee.Role,
		}, employee.Name, email)
	}
	if !errors.Is(err, employeesRepo.ErrEmployeeNotFound) {
		s.logger.Error("Login: employees repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	client, err := s.clientsRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: clients repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	return s.finishLogin(client.PasswordHash, password, domain.Principal{
		ID:   client.ID,
		Role: domain.RoleClient,
	}, client.Name, email)
}

func (s *Service) finishLogin(hash, password string, principal domain.Principal, name, email string) (*LoginResult, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(principal, time.Now())
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, err
	}

	s.logger.Info("Login: issued token for id=%d, role=%s", principal.ID, principal.Role)

	return &LoginResult{Token: token, Principal: principal, Name: name}, nil
}

// RegisterClient регистрирует нового клиента и сразу выпускает токен
func (s *Service) RegisterClient(ctx context.Context, name, email, phone, password string) (*LoginResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	s.logger.Info("RegisterClient: registering email=%s", email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("RegisterClient: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	client := &domain.Client{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}

	client, err = s.clientsRepo.Create(ctx, client)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrEmailTaken) {
			s.logger.Warn("RegisterClient: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("RegisterClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterClient - repository error: %v", ErrInternal, err)
	}

	principal := domain.Principal{ID: client.ID, Role: domain.RoleClient}

	token, err := s.generateToken(principal, time.Now())
	if err != nil {
		s.logger.Error("RegisterClient: failed to issue token: %v", err)
		return nil, err
	}

	s.logger.Info("RegisterClient: registered client id=%d", client.ID)

	return &LoginResult{Token: token, Principal: principal, Name: client.Name}, nil
}
