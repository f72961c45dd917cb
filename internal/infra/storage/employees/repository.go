package employees

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

// Код ошибки PostgreSQL для нарушения уникальности
const uniqueViolationCode = "23505"

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns("name", "email", "phone", "password_hash", "role").
		Values(employee.Name, employee.Email, employee.Phone, employee.PasswordHash, employee.Role).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	employee.CreatedAt = createdAt.Time

	return employee, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByEmail получает сотрудника по email, используется при входе
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := employeeSelect().
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	employee, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan employee: %v", ErrScanRow, method, err)
	}

	return employee, nil
}

// List получает всех сотрудников
func (r *Repository) List(ctx context.Context) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := employeeSelect().
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// LeastLoadedMechanic возвращает механика с наименьшим числом незавершенных задач.
// При равной загрузке выбирается механик с меньшим ID, выбор детерминирован
func (r *Repository) LeastLoadedMechanic(ctx context.Context) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"e.id",
		"e.name",
		"e.email",
		"e.phone",
		"e.password_hash",
		"e.role",
		"e.created_at",
	).
		From("employees e").
		LeftJoin("tasks t ON t.employee_id = e.id AND t.status <> 'completed'").
		Where(squirrel.Eq{"e.role": domain.RoleMechanic}).
		GroupBy("e.id").
		OrderBy("COUNT(t.id) ASC, e.id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LeastLoadedMechanic - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	employee, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LeastLoadedMechanic - scan employee: %v", ErrScanRow, err)
	}

	return employee, nil
}

// Update обновляет данные сотрудника
func (r *Repository) Update(ctx context.Context, employee *domain.Employee) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("employees").
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("phone", employee.Phone).
		Set("role", employee.Role).
		Where(squirrel.Eq{"id": employee.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// Delete удаляет сотрудника
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("employees").
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
		return ErrEmployeeNotFound
	}

	return nil
}

func employeeSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"password_hash",
		"role",
		"created_at",
	).From("employees")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var employee domain.Employee
	var createdAt sql.NullTime

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Phone,
		&employee.PasswordHash,
		&employee.Role,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	employee.CreatedAt = createdAt.Time
	return &employee, nil
}
