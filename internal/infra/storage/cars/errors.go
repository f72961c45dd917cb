package cars

import "errors"

var (
	ErrCarNotFound = errors.New("cars.repository: car not found")
	ErrBuildQuery  = errors.New("cars.repository: failed to build query")
	ErrExecQuery   = errors.New("cars.repository: failed to execute query")
	ErrScanRow     = errors.New("cars.repository: failed to scan row")
)
