package reports

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/psqlbuilder"
)

// Repository репозиторий агрегирующих запросов для отчетов менеджера.
// Все агрегаты считаются на стороне БД, фильтрация по времени создания заказа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отчетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Totals возвращает общее число заказов и суммарную выручку за период
func (r *Repository) Totals(ctx context.Context, filter domain.ReportFilter) (int64, decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COUNT(DISTINCT o.id)",
		"COALESCE(SUM(s.price), 0)",
	).
		From("orders o").
		LeftJoin("order_services os ON os.order_id = o.id").
		LeftJoin("services s ON s.id = os.service_id")

	query, args, err := applyPeriod(selectBuilder, filter).ToSql()
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: Totals - build select query: %v", ErrBuildQuery, err)
	}

	var totalOrders int64
	var totalRevenue decimal.Decimal

	err = executor.QueryRowContext(ctx, query, args...).Scan(&totalOrders, &totalRevenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: Totals - scan totals: %v", ErrScanRow, err)
	}

	return totalOrders, totalRevenue, nil
}

// RevenueByService возвращает выручку в разрезе услуг, по убыванию выручки
func (r *Repository) RevenueByService(ctx context.Context, filter domain.ReportFilter) ([]domain.ServiceRevenue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.service_name",
		"COUNT(DISTINCT o.id)",
		"SUM(s.price)",
	).
		From("orders o").
		Join("order_services os ON os.order_id = o.id").
		Join("services s ON s.id = os.service_id").
		GroupBy("s.id").
		OrderBy("SUM(s.price) DESC, s.service_name ASC")

	query, args, err := applyPeriod(selectBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.ServiceRevenue, 0)
	for rows.Next() {
		var row domain.ServiceRevenue
		if err := rows.Scan(&row.ServiceName, &row.OrderCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("%w: RevenueByService - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RevenueByService - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// OrdersByCarModel возвращает число заказов в разрезе марок и моделей
func (r *Repository) OrdersByCarModel(ctx context.Context, filter domain.ReportFilter) ([]domain.CarModelOrders, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"cm.brand",
		"cm.model_name",
		"COUNT(o.id)",
	).
		From("orders o").
		Join("cars c ON c.id = o.car_id").
		Join("car_models cm ON cm.id = c.car_model_id").
		GroupBy("cm.id").
		OrderBy("COUNT(o.id) DESC, cm.brand ASC, cm.model_name ASC")

	query, args, err := applyPeriod(selectBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OrdersByCarModel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OrdersByCarModel - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.CarModelOrders, 0)
	for rows.Next() {
		var row domain.CarModelOrders
		if err := rows.Scan(&row.Brand, &row.ModelName, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("%w: OrdersByCarModel - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OrdersByCarModel - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// TaskStatsByEmployee возвращает статистику задач в разрезе сотрудников.
// Период применяется по времени создания заказа, как и в остальных срезах
func (r *Repository) TaskStatsByEmployee(ctx context.Context, filter domain.ReportFilter) ([]domain.EmployeeTaskStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"e.name",
		"COUNT(t.id)",
		"COUNT(t.id) FILTER (WHERE t.status = 'completed')",
	).
		From("tasks t").
		Join("employees e ON e.id = t.employee_id").
		Join("orders o ON o.id = t.order_id").
		GroupBy("e.id").
		OrderBy("COUNT(t.id) DESC, e.name ASC")

	query, args, err := applyPeriod(selectBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TaskStatsByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TaskStatsByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.EmployeeTaskStats, 0)
	for rows.Next() {
		var row domain.EmployeeTaskStats
		if err := rows.Scan(&row.EmployeeName, &row.TaskCount, &row.CompletedCount); err != nil {
			return nil, fmt.Errorf("%w: TaskStatsByEmployee - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TaskStatsByEmployee - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// applyPeriod добавляет границы периода по o.created_at, обе границы включительны
func applyPeriod(builder squirrel.SelectBuilder, filter domain.ReportFilter) squirrel.SelectBuilder {
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"o.created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"o.created_at": *filter.To})
	}
	return builder
}
