package create_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату или время
	ErrDateInPast = errors.New("appointment date is in the past")

	// ErrOutsideWorkingHours возвращается, когда интервал визита не помещается в рабочие часы
	ErrOutsideWorkingHours = errors.New("appointment does not fit working hours")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующим заказом
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrNoMechanicAvailable возвращается, когда ни одного механика не зарегистрировано
	ErrNoMechanicAvailable = errors.New("no mechanic available")

	// ErrServiceNotFound возвращается, когда запрошенная услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrCarNotFound возвращается, когда автомобиль не найден или принадлежит другому клиенту
	ErrCarNotFound = errors.New("car not found")

	// ErrCarModelNotFound возвращается, когда модель автомобиля не найдена
	ErrCarModelNotFound = errors.New("car model not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
