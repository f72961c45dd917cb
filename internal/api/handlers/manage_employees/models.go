package manage_employees

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// CreateEmployeeRequest HTTP request model
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateEmployeeRequest HTTP request model
type UpdateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// EmployeeResponse HTTP response model
type EmployeeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// EmployeeListResponse HTTP response model
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

// FromDomainEmployee конвертирует сотрудника в HTTP response
func FromDomainEmployee(employee *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:    employee.ID,
		Name:  employee.Name,
		Email: employee.Email,
		Phone: employee.Phone,
		Role:  string(employee.Role),
	}
}

// FromDomainList конвертирует список сотрудников в HTTP response
func FromDomainList(list []*domain.Employee) *EmployeeListResponse {
	employees := make([]EmployeeResponse, len(list))
	for i, employee := range list {
		employees[i] = *FromDomainEmployee(employee)
	}
	return &EmployeeListResponse{Employees: employees, Total: len(employees)}
}
