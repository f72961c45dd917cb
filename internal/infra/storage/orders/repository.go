package orders

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заказами (записями на обслуживание)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заказ
// Если в контексте передана активная транзакция, использует её:
// создание заказа всегда выполняется внутри транзакции бронирования
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"client_id",
			"car_id",
			"appointment_date",
			"start_time",
			"end_time",
		).
		Values(
			order.ClientID,
			order.CarID,
			order.AppointmentDate,
			order.StartTime,
			order.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time

	return order, nil
}

// AttachServices привязывает услуги к заказу
// Набор услуг заказа создается один раз при бронировании и далее не меняется
func (r *Repository) AttachServices(ctx context.Context, orderID int64, serviceIDs []int64) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("order_services").
		Columns("order_id", "service_id")
	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(orderID, serviceID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AttachServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AttachServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает заказ по ID вместе с его услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"car_id",
		"appointment_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.Order
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.ClientID,
		&order.CarID,
		&order.AppointmentDate,
		&order.StartTime,
		&order.EndTime,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	order.CreatedAt = createdAt.Time

	servicesByOrder, err := r.loadServices(ctx, executor, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Services = servicesByOrder[order.ID]

	return &order, nil
}

// GetDetails получает заказ с данными клиента и автомобиля (для квитанции)
func (r *Repository) GetDetails(ctx context.Context, id int64) (*domain.OrderDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"o.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	details, err := scanDetails(row)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - scan order: %v", ErrScanRow, err)
	}

	servicesByOrder, err := r.loadServices(ctx, executor, []int64{details.ID})
	if err != nil {
		return nil, err
	}
	details.Services = servicesByOrder[details.ID]

	return details, nil
}

// ListByDate получает все заказы на указанную дату, отсортированные по времени начала.
// Внутри транзакции бронирования строки блокируются через FOR UPDATE,
// чтобы конкурирующие бронирования на пересекающиеся интервалы не прошли обе
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"car_id",
		"appointment_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("orders").
		Where(squirrel.Eq{"appointment_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var createdAt sql.NullTime

		err := rows.Scan(
			&order.ID,
			&order.ClientID,
			&order.CarID,
			&order.AppointmentDate,
			&order.StartTime,
			&order.EndTime,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}

		order.CreatedAt = createdAt.Time
		result = append(result, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// List получает заказы с данными клиента и автомобиля с гибкой фильтрацией
//
// Примеры использования:
//
//  1. Все заказы (панель менеджера):
//     filter := domain.OrdersFilter{}
//
//  2. Заказы клиента:
//     filter := domain.OrdersFilter{ClientID: &clientID}
//
//  3. Заказы механика за месяц:
//     filter := domain.OrdersFilter{EmployeeID: &employeeID, DateFrom: &first, DateTo: &last}
func (r *Repository) List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.OrderDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailsSelect()

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"o.client_id": *filter.ClientID})
	}
	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.
			Join("tasks t ON t.order_id = o.id").
			Where(squirrel.Eq{"t.employee_id": *filter.EmployeeID})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"o.appointment_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"o.appointment_date": *filter.DateTo})
	}

	query, args, err := selectBuilder.
		OrderBy("o.appointment_date ASC, o.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.OrderDetails, 0)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, details)
		orderIDs = append(orderIDs, details.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	servicesByOrder, err := r.loadServices(ctx, executor, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, details := range result {
		details.Services = servicesByOrder[details.ID]
	}

	return result, nil
}

// Delete удаляет заказ; связанные услуги и задачи удаляются каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// detailsSelect общий SELECT заказа с данными клиента и автомобиля
func detailsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"o.id",
		"o.client_id",
		"o.car_id",
		"o.appointment_date",
		"o.start_time",
		"o.end_time",
		"o.created_at",
		"cl.name",
		"cl.phone",
		"cm.brand",
		"cm.model_name",
		"c.car_year",
		"c.vin",
		"c.license_plate",
	).
		From("orders o").
		Join("clients cl ON cl.id = o.client_id").
		Join("cars c ON c.id = o.car_id").
		Join("car_models cm ON cm.id = c.car_model_id")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDetails(row rowScanner) (*domain.OrderDetails, error) {
	var details domain.OrderDetails
	var createdAt sql.NullTime

	err := row.Scan(
		&details.ID,
		&details.ClientID,
		&details.CarID,
		&details.AppointmentDate,
		&details.StartTime,
		&details.EndTime,
		&createdAt,
		&details.ClientName,
		&details.ClientPhone,
		&details.CarBrand,
		&details.CarModelName,
		&details.CarYear,
		&details.CarVIN,
		&details.CarLicensePlate,
	)
	if err != nil {
		return nil, err
	}

	details.CreatedAt = createdAt.Time
	return &details, nil
}

// loadServices загружает услуги для набора заказов одним запросом
func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, orderIDs []int64) (map[int64][]domain.Service, error) {
	result := make(map[int64][]domain.Service, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(
		"os.order_id",
		"s.id",
		"s.service_name",
		"s.description",
		"s.price",
		"s.duration",
	).
		From("order_services os").
		Join("services s ON s.id = os.service_id").
		Where(squirrel.Eq{"os.order_id": orderIDs}).
		OrderBy("os.order_id ASC, s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var service domain.Service

		err := rows.Scan(
			&orderID,
			&service.ID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.DurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadServices - scan row: %v", ErrScanRow, err)
		}

		result[orderID] = append(result[orderID], service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
