package carmodels

import "errors"

var (
	ErrCarModelNotFound = errors.New("carmodels.repository: car model not found")
	ErrBuildQuery       = errors.New("carmodels.repository: failed to build query")
	ErrExecQuery        = errors.New("carmodels.repository: failed to execute query")
	ErrScanRow          = errors.New("carmodels.repository: failed to scan row")
)
