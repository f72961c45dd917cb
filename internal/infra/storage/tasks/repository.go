package tasks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/psqlbuilder"
)

// Repository репозиторий для работы с задачами механиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую задачу
// Вызывается внутри транзакции бронирования, у заказа всегда ровно одна задача
func (r *Repository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tasks").
		Columns("order_id", "employee_id", "status").
		Values(task.OrderID, task.EmployeeID, task.Status).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&task.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	task.CreatedAt = createdAt.Time

	return task, nil
}

// GetByID получает задачу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"order_id",
		"employee_id",
		"status",
		"created_at",
	).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var task domain.Task
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&task.ID,
		&task.OrderID,
		&task.EmployeeID,
		&task.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %v", ErrScanRow, err)
	}

	task.CreatedAt = createdAt.Time

	return &task, nil
}

// ListByEmployee получает задачи механика с данными заказа для рабочей панели.
// Задачи отсортированы по дате и времени приема, названия услуг агрегируются
// на стороне БД
func (r *Repository) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.TaskDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.order_id",
		"t.employee_id",
		"t.status",
		"t.created_at",
		"o.appointment_date",
		"o.start_time",
		"o.end_time",
		"cl.name",
		"cm.brand",
		"cm.model_name",
		"c.license_plate",
		"COALESCE(ARRAY_AGG(s.service_name ORDER BY s.id) FILTER (WHERE s.id IS NOT NULL), '{}')",
	).
		From("tasks t").
		Join("orders o ON o.id = t.order_id").
		Join("clients cl ON cl.id = o.client_id").
		Join("cars c ON c.id = o.car_id").
		Join("car_models cm ON cm.id = c.car_model_id").
		LeftJoin("order_services os ON os.order_id = o.id").
		LeftJoin("services s ON s.id = os.service_id").
		Where(squirrel.Eq{"t.employee_id": employeeID}).
		GroupBy("t.id", "o.id", "cl.id", "cm.id", "c.id").
		OrderBy("o.appointment_date ASC, o.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.TaskDetails, 0)
	for rows.Next() {
		var details domain.TaskDetails
		var createdAt sql.NullTime

		err := rows.Scan(
			&details.ID,
			&details.OrderID,
			&details.EmployeeID,
			&details.Status,
			&createdAt,
			&details.AppointmentDate,
			&details.StartTime,
			&details.EndTime,
			&details.ClientName,
			&details.CarBrand,
			&details.CarModelName,
			&details.CarLicensePlate,
			pq.Array(&details.ServiceNames),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmployee - scan row: %v", ErrScanRow, err)
		}

		details.CreatedAt = createdAt.Time
		result = append(result, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus переводит задачу в новый статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tasks").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
