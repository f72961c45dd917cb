package update_task_status

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse HTTP response model
type TaskResponse struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"orderId"`
	EmployeeID int64  `json:"employeeId"`
	Status     string `json:"status"`
}

// FromDomainTask конвертирует задачу в HTTP response
func FromDomainTask(task *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:         task.ID,
		OrderID:    task.OrderID,
		EmployeeID: task.EmployeeID,
		Status:     string(task.Status),
	}
}
