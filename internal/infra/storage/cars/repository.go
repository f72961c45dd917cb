package cars

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/psqlbuilder"
)

// Repository репозиторий для работы с автомобилями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автомобиль клиента
// Вызывается внутри транзакции бронирования, когда клиент записывает новый автомобиль
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns("client_id", "car_model_id", "car_year", "vin", "license_plate").
		Values(car.ClientID, car.CarModelID, car.Year, car.VIN, car.LicensePlate).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&car.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time

	return car, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := carSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var car domain.Car
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID,
		&car.ClientID,
		&car.CarModelID,
		&car.Year,
		&car.VIN,
		&car.LicensePlate,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	car.CreatedAt = createdAt.Time

	return &car, nil
}

// ListByClient получает все автомобили клиента
func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := carSelect().
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Car, 0)
	for rows.Next() {
		var car domain.Car
		var createdAt sql.NullTime

		err := rows.Scan(
			&car.ID,
			&car.ClientID,
			&car.CarModelID,
			&car.Year,
			&car.VIN,
			&car.LicensePlate,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByClient - scan row: %v", ErrScanRow, err)
		}

		car.CreatedAt = createdAt.Time
		result = append(result, &car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClient - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func carSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"client_id",
		"car_model_id",
		"car_year",
		"vin",
		"license_plate",
		"created_at",
	).From("cars")
}
