package domain

import (
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// TaskStatus статус задачи механика
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses список всех допустимых статусов
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
}

// Valid возвращает true, если статус входит в список допустимых
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Task задача сотруднику, создаваемая ровно одна на заказ
type Task struct {
	ID         int64
	OrderID    int64
	EmployeeID int64
	Status     TaskStatus
	CreatedAt  time.Time
}

// IsCompleted возвращает true, если задача завершена
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// TaskDetails задача с данными заказа для панели механика
type TaskDetails struct {
	Task

	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	ClientName      string
	CarBrand        string
	CarModelName    string
	CarLicensePlate string
	ServiceNames    []string
}
