package domain

import "time"

// Role роль аутентифицированного пользователя
type Role string

const (
	RoleClient   Role = "client"
	RoleMechanic Role = "mechanic"
	RoleManager  Role = "manager"
)

// Valid возвращает true, если роль входит в список известных
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleMechanic, RoleManager:
		return true
	default:
		return false
	}
}

// EmployeeRole проверяет, что роль относится к сотруднику
func (r Role) EmployeeRole() bool {
	return r == RoleMechanic || r == RoleManager
}

// Principal аутентифицированный пользователь запроса.
// Извлекается из токена в middleware и передается явно, без
// неявного состояния сессии в бизнес-логике
type Principal struct {
	ID   int64
	Role Role
}

// IsManager возвращает true, если пользователь менеджер
func (p Principal) IsManager() bool {
	return p.Role == RoleManager
}

// IsEmployee возвращает true, если пользователь механик или менеджер
func (p Principal) IsEmployee() bool {
	return p.Role.EmployeeRole()
}

// Client клиент автосервиса
type Client struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// Employee сотрудник автосервиса (механик или менеджер)
type Employee struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
