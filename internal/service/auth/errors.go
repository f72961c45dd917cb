package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidToken возвращается при недействительном или истекшем токене
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
