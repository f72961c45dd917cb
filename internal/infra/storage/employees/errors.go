package employees

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employees.repository: employee not found")
	ErrEmailTaken       = errors.New("employees.repository: email already registered")
	ErrBuildQuery       = errors.New("employees.repository: failed to build query")
	ErrExecQuery        = errors.New("employees.repository: failed to execute query")
	ErrScanRow          = errors.New("employees.repository: failed to scan row")
)
