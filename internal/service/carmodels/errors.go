package carmodels

import "errors"

var (
	// ErrCarModelNotFound возвращается, когда модель не найдена
	ErrCarModelNotFound = errors.New("car model not found")

	// ErrAccessDenied возвращается, когда операция доступна только менеджеру
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
