package tasks

import "errors"

var (
	ErrTaskNotFound = errors.New("tasks.repository: task not found")
	ErrBuildQuery   = errors.New("tasks.repository: failed to build query")
	ErrExecQuery    = errors.New("tasks.repository: failed to execute query")
	ErrScanRow      = errors.New("tasks.repository: failed to scan row")
)
