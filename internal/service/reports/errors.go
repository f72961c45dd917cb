package reports

import "errors"

var (
	// ErrAccessDenied возвращается, когда отчет запрашивает не менеджер
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
