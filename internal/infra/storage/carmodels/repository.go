package carmodels

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/psqlbuilder"
)

// Repository репозиторий для работы со справочником моделей автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория моделей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую модель автомобиля
func (r *Repository) Create(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("car_models").
		Columns("brand", "model_name").
		Values(model.Brand, model.ModelName).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return model, nil
}

// GetByID получает модель по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CarModel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "brand", "model_name").
		From("car_models").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var model domain.CarModel
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&model.ID,
		&model.Brand,
		&model.ModelName,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCarModelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan model: %v", ErrScanRow, err)
	}

	return &model, nil
}

// List получает все модели справочника
func (r *Repository) List(ctx context.Context) ([]*domain.CarModel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "brand", "model_name").
		From("car_models").
		OrderBy("brand ASC, model_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.CarModel, 0)
	for rows.Next() {
		var model domain.CarModel
		if err := rows.Scan(&model.ID, &model.Brand, &model.ModelName); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет модель автомобиля
func (r *Repository) Update(ctx context.Context, model *domain.CarModel) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("car_models").
		Set("brand", model.Brand).
		Set("model_name", model.ModelName).
		Where(squirrel.Eq{"id": model.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarModelNotFound
	}

	return nil
}

// Delete удаляет модель автомобиля
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("car_models").
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
		return ErrCarModelNotFound
	}

	return nil
}
