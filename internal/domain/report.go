package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter период отчета по времени создания заказа.
// Отсутствующая граница означает открытый интервал
type ReportFilter struct {
	From *time.Time // Включительно
	To   *time.Time // Включительно
}

// ServiceRevenue выручка по услуге
type ServiceRevenue struct {
	ServiceName string
	OrderCount  int64
	Revenue     decimal.Decimal
}

// CarModelOrders количество заказов по марке и модели автомобиля
type CarModelOrders struct {
	Brand      string
	ModelName  string
	OrderCount int64
}

// EmployeeTaskStats статистика задач по сотруднику
type EmployeeTaskStats struct {
	EmployeeName   string
	TaskCount      int64
	CompletedCount int64
}

// ReportSummary сводный отчет менеджера
type ReportSummary struct {
	From *time.Time
	To   *time.Time

	TotalOrders  int64
	TotalRevenue decimal.Decimal

	ByService  []ServiceRevenue
	ByCarModel []CarModelOrders
	ByEmployee []EmployeeTaskStats
}
