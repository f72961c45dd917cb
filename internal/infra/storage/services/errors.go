package services

import "errors"

var (
	ErrServiceNotFound = errors.New("services.repository: service not found")
	ErrBuildQuery      = errors.New("services.repository: failed to build query")
	ErrExecQuery       = errors.New("services.repository: failed to execute query")
	ErrScanRow         = errors.New("services.repository: failed to scan row")
)
