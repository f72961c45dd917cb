package get_employee_tasks

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// TaskItem элемент списка задач
type TaskItem struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`

	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	ClientName      string `json:"clientName"`
	CarBrand        string `json:"carBrand"`
	CarModelName    string `json:"carModelName"`
	CarLicensePlate string `json:"carLicensePlate"`

	ServiceNames []string `json:"serviceNames"`
}

// TaskListResponse HTTP response model
type TaskListResponse struct {
	Tasks []TaskItem `json:"tasks"`
	Total int        `json:"total"`
}

// FromDomainList конвертирует список задач в HTTP response
func FromDomainList(list []*domain.TaskDetails) *TaskListResponse {
	tasks := make([]TaskItem, len(list))
	for i, details := range list {
		tasks[i] = TaskItem{
			ID:              details.ID,
			OrderID:         details.OrderID,
			Status:          string(details.Status),
			Date:            details.AppointmentDate.Format(domain.DateFormat),
			StartTime:       details.StartTime.String(),
			EndTime:         details.EndTime.String(),
			ClientName:      details.ClientName,
			CarBrand:        details.CarBrand,
			CarModelName:    details.CarModelName,
			CarLicensePlate: details.CarLicensePlate,
			ServiceNames:    details.ServiceNames,
		}
	}

	return &TaskListResponse{Tasks: tasks, Total: len(tasks)}
}
