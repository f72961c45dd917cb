package create_order

import (
	"fmt"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// Самый старый год выпуска, который принимает запись
const minCarYear = 1950

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if (req.CarID == nil) == (req.NewCar == nil) {
		return fmt.Errorf("%w: exactly one of carID or newCar is required", ErrInvalidInput)
	}

	if req.CarID != nil && *req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.NewCar != nil {
		if err := validateNewCar(req.NewCar, now); err != nil {
			return err
		}
	}

	return nil
}

// validateNewCar валидирует данные нового автомобиля
func validateNewCar(car *NewCar, now time.Time) error {
	if car.CarModelID <= 0 {
		return fmt.Errorf("%w: carModelID must be positive", ErrInvalidInput)
	}

	if car.Year < minCarYear || car.Year > now.Year()+1 {
		return fmt.Errorf("%w: car year must be between %d and %d", ErrInvalidInput, minCarYear, now.Year()+1)
	}

	if len(car.VIN) != domain.VINLength {
		return fmt.Errorf("%w: VIN must be %d characters", ErrInvalidInput, domain.VINLength)
	}

	if car.LicensePlate == "" {
		return fmt.Errorf("%w: license plate is required", ErrInvalidInput)
	}

	return nil
}

// validateDateTime проверяет, что дата и время записи не в прошлом
func validateDateTime(date time.Time, start types.TimeString, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}

	if dateOnly.Equal(nowOnly) && start.IsBefore(types.NewTimeString(now)) {
		return ErrDateInPast
	}

	return nil
}

// validateWorkingHours проверяет, что интервал [start, end) помещается в рабочие часы
// Визит, заканчивающийся ровно в закрытие, допустим
func validateWorkingHours(start, end types.TimeString, schedule domain.Schedule) error {
	if start.IsBefore(schedule.OpenTime) {
		return ErrOutsideWorkingHours
	}

	if end.IsAfter(schedule.CloseTime) {
		return ErrOutsideWorkingHours
	}

	return nil
}
