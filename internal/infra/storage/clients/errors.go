package clients

import "errors"

var (
	ErrClientNotFound = errors.New("clients.repository: client not found")
	ErrEmailTaken     = errors.New("clients.repository: email already registered")
	ErrBuildQuery     = errors.New("clients.repository: failed to build query")
	ErrExecQuery      = errors.New("clients.repository: failed to execute query")
	ErrScanRow        = errors.New("clients.repository: failed to scan row")
)
