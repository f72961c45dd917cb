package export_report

import (
	"context"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

type ReportsService interface {
	Summary(ctx context.Context, principal domain.Principal, filter domain.ReportFilter) (*domain.ReportSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
