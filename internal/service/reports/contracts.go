package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ReportsRepository интерфейс репозитория агрегирующих запросов
type ReportsRepository interface {
	Totals(ctx context.Context, filter domain.ReportFilter) (int64, decimal.Decimal, error)
	RevenueByService(ctx context.Context, filter domain.ReportFilter) ([]domain.ServiceRevenue, error)
	OrdersByCarModel(ctx context.Context, filter domain.ReportFilter) ([]domain.CarModelOrders, error)
	TaskStatsByEmployee(ctx context.Context, filter domain.ReportFilter) ([]domain.EmployeeTaskStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
