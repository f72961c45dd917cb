package reports

import "errors"

var (
	ErrBuildQuery = errors.New("reports.repository: failed to build query")
	ErrExecQuery  = errors.New("reports.repository: failed to execute query")
	ErrScanRow    = errors.New("reports.repository: failed to scan row")
)
